package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns the manager dashboard for a department, fanning the
	// count queries out concurrently.
	GetStats(ctx context.Context, departmentID string) (*StatsResponse, error)
}
