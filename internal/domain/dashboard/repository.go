package dashboard

import (
	"context"
	"time"
)

// CoverageStats combines today's schedule coverage counts in a single query
type CoverageStats struct {
	Scheduled int64
	OnLeave   int64
}

// PendingStats combines pending request counts in a single query
type PendingStats struct {
	Leave    int64
	CompOff  int64
	Overtime int64
}

// DashboardRepository defines data access for dashboard statistics
type DashboardRepository interface {
	GetEmployeeCounts(ctx context.Context, departmentID string) (total, active int64, err error)
	GetCoverageStats(ctx context.Context, departmentID string, date time.Time) (CoverageStats, error)
	GetPendingStats(ctx context.Context, departmentID string) (PendingStats, error)
}
