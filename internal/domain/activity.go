package domain

// Activity is a row of the activities table.
type Activity struct {
	ID        int64   `json:"id"`
	ContactID int64   `json:"contact_id"`
	Type      string  `json:"type"`
	Subject   *string `json:"subject"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

// ActivityCreateInput is the body of POST /api/activities.
type ActivityCreateInput struct {
	ContactID *int64  `json:"contact_id"`
	Type      *string `json:"type"`
	Subject   *string `json:"subject"`
	Notes     *string `json:"notes"`
}
