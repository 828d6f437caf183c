package domain

// DashboardStats holds the aggregate counts shown on the dashboard. The four
// values are read independently and need not describe a single instant.
type DashboardStats struct {
	Contacts      int64   `json:"contacts"`
	Companies     int64   `json:"companies"`
	Deals         int64   `json:"deals"`
	PipelineValue float64 `json:"pipeline_value"`
}
