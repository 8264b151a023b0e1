package attendance

import (
	"context"
	"time"
)

type CheckInOutRepository interface {
	Create(ctx context.Context, rec CheckInOut) (CheckInOut, error)
	// GetOpenByEmployee returns the employee's session without a check-out,
	// if any.
	GetOpenByEmployee(ctx context.Context, employeeID string) (*CheckInOut, error)
	// GetStaleOpen returns sessions still open whose check-in is before the
	// cutoff.
	GetStaleOpen(ctx context.Context, cutoff time.Time) ([]CheckInOut, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (CheckInOut, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByEmployeeDate returns the attendance row for the date, if any.
	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)
	// ExistsForDate reports whether any attendance row exists for the
	// employee and date.
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
