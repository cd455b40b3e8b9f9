package entity

// SchedulingStats aggregates the owner dashboard numbers, optionally
// restricted to a pickup-date window.
type SchedulingStats struct {
	Total               int64
	Scheduled           int64
	Completed           int64
	CompletedRevenue    float64
	EstimatedRevenue    float64
	ActiveSubscriptions int64
}
