package compoff

import (
	"context"
	"time"
)

type CompOffRequestRepository interface {
	Create(ctx context.Context, req CompOffRequest) (CompOffRequest, error)
	GetByID(ctx context.Context, id string) (CompOffRequest, error)
	List(ctx context.Context, filter CompOffRequestFilter) ([]CompOffRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewedBy string, scheduleID *string) (CompOffRequest, error)

	// GetApprovedByEmployeeDate returns the approved earn request for the
	// exact date, if any.
	GetApprovedByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*CompOffRequest, error)

	// GetApprovedInRange returns approved requests for the department's
	// employees dated within [start, end].
	GetApprovedInRange(ctx context.Context, departmentID string, start, end time.Time) ([]CompOffRequest, error)
}

type CompOffTrackingRepository interface {
	// GetOrCreateByEmployeeID returns the employee's tracking row, creating
	// a zeroed one when absent.
	GetOrCreateByEmployeeID(ctx context.Context, employeeID string) (CompOffTracking, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (CompOffTracking, error)
	ListAll(ctx context.Context) ([]CompOffTracking, error)
	// ApplyDelta adds the deltas to the tracking totals. Callers run this in
	// the same transaction as the matching detail insert.
	ApplyDelta(ctx context.Context, employeeID string, earned, used, expired float64) (CompOffTracking, error)
}

type CompOffDetailRepository interface {
	Create(ctx context.Context, detail CompOffDetail) (CompOffDetail, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]CompOffDetail, error)
	// GetByEmployeeMonth returns detail rows tagged with the earning month.
	GetByEmployeeMonth(ctx context.Context, employeeID, earnedMonth string) ([]CompOffDetail, error)
}
