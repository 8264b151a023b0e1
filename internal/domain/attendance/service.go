package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn validates against today's schedule and grades punctuality.
	// The secondary attendance-row write is best-effort: check-in succeeds
	// even when it fails.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the open session and reconciles worked and overtime
	// hours onto the attendance row.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
}
