package domain

// Company is a row of the companies table.
type Company struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Website   *string `json:"website"`
	Industry  *string `json:"industry"`
	CreatedAt string  `json:"created_at"`
}

// CompanyCreateInput is the body of POST /api/companies. Name is required
// but is not checked before it reaches the store.
type CompanyCreateInput struct {
	Name     *string `json:"name"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
}

// CompanyUpdateInput is the body of PUT /api/companies/{id}. Every field is
// written as sent; an omitted field clears the column.
type CompanyUpdateInput struct {
	Name     *string `json:"name"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
}
