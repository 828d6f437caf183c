package domain

// RequestLogEntry records one served API request.
type RequestLogEntry struct {
	ID            int64  `json:"id"`
	Method        string `json:"method"`
	Path          string `json:"path"`
	StatusCode    int    `json:"statusCode"`
	DurationMs    int64  `json:"durationMs"`
	CorrelationID string `json:"correlationId,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// RequestLogPage is one page of request log entries, newest first. After is
// the cursor for the next page and is empty on the last page.
type RequestLogPage struct {
	Results []RequestLogEntry
	After   string
	HasMore bool
}
