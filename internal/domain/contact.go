package domain

// Contact is a row of the contacts table joined with its company's name.
// CompanyID may reference a company that no longer exists, in which case
// CompanyName is nil.
type Contact struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CompanyID   *int64  `json:"company_id"`
	CreatedAt   string  `json:"created_at"`
	CompanyName *string `json:"company_name"`
}

// ContactDetail is a contact together with its activities, newest first.
type ContactDetail struct {
	Contact
	Activities []Activity `json:"activities"`
}

// ContactCreateInput is the body of POST /api/contacts.
type ContactCreateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CompanyID *int64  `json:"company_id"`
}

// ContactUpdateInput is the body of PUT /api/contacts/{id}.
type ContactUpdateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CompanyID *int64  `json:"company_id"`
}
