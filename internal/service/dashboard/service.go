package dashboard

import (
	"context"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type dashboardServiceImpl struct {
	repo   dashboard.DashboardRepository
	oracle calendar.Oracle
}

func NewDashboardService(repo dashboard.DashboardRepository, oracle calendar.Oracle) dashboard.DashboardService {
	return &dashboardServiceImpl{
		repo:   repo,
		oracle: oracle,
	}
}

// GetStats returns the department dashboard. The three count queries are
// independent, so they fan out on an errgroup and the response is assembled
// once all of them land.
func (s *dashboardServiceImpl) GetStats(ctx context.Context, departmentID string) (*dashboard.StatsResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		total, active int64
		coverage      dashboard.CoverageStats
		pending       dashboard.PendingStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, active, err = s.repo.GetEmployeeCounts(gCtx, departmentID)
		return err
	})

	g.Go(func() error {
		var err error
		coverage, err = s.repo.GetCoverageStats(gCtx, departmentID, today)
		return err
	})

	g.Go(func() error {
		var err error
		pending, err = s.repo.GetPendingStats(gCtx, departmentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	week := calendar.WeekInfo(s.oracle, calendar.WeekStart(today))

	return &dashboard.StatsResponse{
		DepartmentID:     departmentID,
		TotalEmployees:   total,
		ActiveEmployees:  active,
		ScheduledToday:   coverage.Scheduled,
		OnLeaveToday:     coverage.OnLeave,
		PendingLeave:     pending.Leave,
		PendingCompOff:   pending.CompOff,
		PendingOvertime:  pending.Overtime,
		RequiredThisWeek: week.RequiredShifts,
		WeekdayHolidays:  week.WeekdayHolidayCount,
	}, nil
}
