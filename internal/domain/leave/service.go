package leave

import (
	"context"
)

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, int64, error)

	// Approve marks the request approved and materializes one schedule row
	// per day in range, skipping days that already carry a non-cancelled
	// row. Comp-off leave consumes the employee's earned balance and fails
	// when the balance has expired.
	Approve(ctx context.Context, req ReviewLeaveRequestRequest) (ApproveLeaveResult, error)
	Reject(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequestResponse, error)
}
