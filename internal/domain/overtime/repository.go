package overtime

import (
	"context"
	"time"
)

type OvertimeRequestRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	List(ctx context.Context, filter OvertimeRequestFilter) ([]OvertimeRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewedBy string) (OvertimeRequest, error)

	// GetApprovedByEmployeeDate returns the approved request for the date,
	// if any; check-out reconciliation clips against it.
	GetApprovedByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*OvertimeRequest, error)
}

type OvertimeTrackingRepository interface {
	// GetOrCreate returns the employee's tracking row for year/month,
	// creating one with the default allocation when absent.
	GetOrCreate(ctx context.Context, employeeID string, year, month int) (OvertimeTracking, error)
	// AddUsedHours bumps used and recomputes remaining.
	AddUsedHours(ctx context.Context, employeeID string, year, month int, hours float64) (OvertimeTracking, error)
}
