package schedule

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/outcome"
)

type ScheduleService interface {
	// Create runs the weekly-quota and consecutive validators, then the
	// daily/weekly hour checks. A breach of the hour caps returns a
	// confirmation-required outcome carrying the overtime breakdown instead
	// of an error.
	Create(ctx context.Context, req CreateScheduleRequest) (outcome.Outcome[ScheduleResponse], error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	List(ctx context.Context, filter ScheduleFilter) ([]ScheduleResponse, int64, error)
	Update(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	// Generate runs the schedule generator over [start_date, end_date]. When
	// rows already exist and regenerate is false, it returns a
	// confirmation-required outcome with the existing count.
	Generate(ctx context.Context, req GenerateScheduleRequest) (outcome.Outcome[GenerateResult], error)

	// ValidateWeeklyQuota and ValidateConsecutive are exposed for manual
	// schedule flows; both return (ok, reason).
	ValidateWeeklyQuota(ctx context.Context, employeeID string, date string, excludeID string) (bool, string, error)
	ValidateConsecutive(ctx context.Context, employeeID string, date string, excludeID string) (bool, string, error)

	WeekInfo(ctx context.Context, weekStart string) (calendar.WeekSummary, error)
}
