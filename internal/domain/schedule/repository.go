package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, sched Schedule) (Schedule, error)
	CreateBatch(ctx context.Context, scheds []Schedule) (int, error)
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]Schedule, int64, error)
	Update(ctx context.Context, req UpdateScheduleRequest) (Schedule, error)
	Delete(ctx context.Context, id string) error

	// GetByEmployeeDateRange returns all non-cancelled rows for the employee
	// in [start, end], ordered by date.
	GetByEmployeeDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Schedule, error)

	// GetByDepartmentDateRange returns all non-cancelled rows for the
	// department in [start, end], ordered by employee then date.
	GetByDepartmentDateRange(ctx context.Context, departmentID string, start, end time.Time) ([]Schedule, error)

	// CountByDepartmentDateRange counts existing rows for the regenerate
	// confirmation check.
	CountByDepartmentDateRange(ctx context.Context, departmentID string, start, end time.Time) (int64, error)

	// DeleteGeneratedInRange removes rows with a status in
	// RegenerateDeletableStatuses, first detaching attendance records and
	// nulling check-in/comp-off references to them. Returns deleted count.
	DeleteGeneratedInRange(ctx context.Context, departmentID string, start, end time.Time) (int64, error)

	// ExistsForEmployeeDate reports whether a non-cancelled row exists,
	// optionally restricted to a status set.
	ExistsForEmployeeDate(ctx context.Context, employeeID string, date time.Time, statuses []Status) (bool, error)

	// MarkPastSchedules flips past scheduled rows to completed where an
	// attendance record exists for the date and missed otherwise, up to and
	// including cutoff. Returns affected count.
	MarkPastSchedules(ctx context.Context, cutoff time.Time) (int64, error)
}
