package domain

// DefaultDealStage is the stage a deal gets when created without one.
const DefaultDealStage = "lead"

// StageClosedLost marks deals excluded from the pipeline value.
const StageClosedLost = "closed-lost"

// Deal is a row of the deals table joined with its company's name.
type Deal struct {
	ID          int64    `json:"id"`
	CompanyID   *int64   `json:"company_id"`
	Title       string   `json:"title"`
	Value       *float64 `json:"value"`
	Stage       *string  `json:"stage"`
	CloseDate   *string  `json:"close_date"`
	CreatedAt   string   `json:"created_at"`
	CompanyName *string  `json:"company_name"`
}

// DealCreateInput is the body of POST /api/deals.
type DealCreateInput struct {
	CompanyID *int64   `json:"company_id"`
	Title     *string  `json:"title"`
	Value     *float64 `json:"value"`
	Stage     *string  `json:"stage"`
	CloseDate *string  `json:"close_date"`
}

// DealUpdateInput is the body of PUT /api/deals/{id}. The owning company is
// not editable.
type DealUpdateInput struct {
	Title     *string  `json:"title"`
	Value     *float64 `json:"value"`
	Stage     *string  `json:"stage"`
	CloseDate *string  `json:"close_date"`
}
