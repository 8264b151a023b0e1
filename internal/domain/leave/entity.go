package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid    LeaveType = "paid"
	LeaveTypeUnpaid  LeaveType = "unpaid"
	LeaveTypeCompOff LeaveType = "comp_off"
)

var LeaveTypeValues = []string{
	string(LeaveTypePaid),
	string(LeaveTypeUnpaid),
	string(LeaveTypeCompOff),
}

type DurationType string

const (
	DurationFullDay          DurationType = "full_day"
	DurationHalfDayMorning   DurationType = "half_day_morning"
	DurationHalfDayAfternoon DurationType = "half_day_afternoon"
)

var DurationTypeValues = []string{
	string(DurationFullDay),
	string(DurationHalfDayMorning),
	string(DurationHalfDayAfternoon),
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest is an employee's request for a date range. Approval is the
// trigger that materializes the matching schedule rows.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	DurationType DurationType
	StartDate    time.Time
	EndDate      time.Time
	Reason       *string

	Status      RequestStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	ReviewNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}
