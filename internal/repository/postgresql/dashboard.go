package postgresql

import (
	"context"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeCounts(ctx context.Context, departmentID string) (total, active int64, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM employees
		WHERE department_id = $1
	`
	err = q.QueryRow(ctx, query, departmentID).Scan(&total, &active)
	return total, active, err
}

// GetCoverageStats implements dashboard.DashboardRepository. One query
// covers both counts: worked statuses land in scheduled, leave statuses in
// on_leave.
func (r *dashboardRepositoryImpl) GetCoverageStats(ctx context.Context, departmentID string, date time.Time) (dashboard.CoverageStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('scheduled', 'completed', 'comp_off_earned')),
			COUNT(*) FILTER (WHERE status IN ('leave', 'leave_half_morning', 'leave_half_afternoon', 'comp_off_taken'))
		FROM schedules
		WHERE department_id = $1 AND date = $2 AND status <> 'cancelled'
	`

	var stats dashboard.CoverageStats
	err := q.QueryRow(ctx, query, departmentID, date).Scan(&stats.Scheduled, &stats.OnLeave)
	return stats, err
}

// GetPendingStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetPendingStats(ctx context.Context, departmentID string) (dashboard.PendingStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM leave_requests lr
				JOIN employees e ON e.id = lr.employee_id
				WHERE e.department_id = $1 AND lr.status = 'pending'),
			(SELECT COUNT(*) FROM comp_off_requests cr
				JOIN employees e ON e.id = cr.employee_id
				WHERE e.department_id = $1 AND cr.status = 'pending'),
			(SELECT COUNT(*) FROM overtime_requests orq
				JOIN employees e ON e.id = orq.employee_id
				WHERE e.department_id = $1 AND orq.status = 'pending')
	`

	var stats dashboard.PendingStats
	err := q.QueryRow(ctx, query, departmentID).Scan(&stats.Leave, &stats.CompOff, &stats.Overtime)
	return stats, err
}
