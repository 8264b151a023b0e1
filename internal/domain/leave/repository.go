package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewedBy string, reviewNotes *string) (LeaveRequest, error)

	// GetApprovedCovering returns approved requests whose date range covers
	// the given date for the employee.
	GetApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]LeaveRequest, error)

	// GetApprovedOverlapping returns approved requests for any employee in
	// the department overlapping [start, end]; the generator uses this to
	// materialize leave rows.
	GetApprovedOverlapping(ctx context.Context, departmentID string, start, end time.Time) ([]LeaveRequest, error)
}
