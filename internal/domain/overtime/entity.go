package overtime

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// OvertimeRequest is a manager-approvable request to work past the shift
// end on a date. The optional from/to window bounds how much of the actual
// worked time counts as paid overtime at check-out.
type OvertimeRequest struct {
	ID           string
	EmployeeID   string
	RequestDate  time.Time
	FromTime     *string // "HH:MM", nil when no explicit window
	ToTime       *string
	RequestHours float64
	Reason       *string
	Status       RequestStatus
	ReviewedBy   *string
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	EmployeeName *string
}

// OvertimeTracking is the monthly overtime-hours budget per employee.
// Informational cap, separate from per-request approval.
type OvertimeTracking struct {
	ID             string
	EmployeeID     string
	Year           int
	Month          int
	AllocatedHours float64
	UsedHours      float64
	RemainingHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const DefaultAllocatedHours = 8.0
