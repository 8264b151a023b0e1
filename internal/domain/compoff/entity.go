package compoff

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// CompOffRequest asks to mark a date as worked outside the normal schedule.
// Approval earns one comp-off day and creates the matching schedule row.
type CompOffRequest struct {
	ID          string
	EmployeeID  string
	CompOffDate time.Time
	Reason      *string
	Status      RequestStatus
	ScheduleID  *string // the comp_off_earned row created on approval
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EmployeeName *string
}

// CompOffTracking holds the running ledger totals, one row per employee.
// available = earned − used − expired, clamped at 0 for display.
type CompOffTracking struct {
	ID          string
	EmployeeID  string
	EarnedDays  float64
	UsedDays    float64
	ExpiredDays float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailableDays returns the usable balance, never negative.
func (t CompOffTracking) AvailableDays() float64 {
	available := t.EarnedDays - t.UsedDays - t.ExpiredDays
	if available < 0 {
		return 0
	}
	return available
}

type DetailType string

const (
	DetailTypeEarned  DetailType = "earned"
	DetailTypeUsed    DetailType = "used"
	DetailTypeExpired DetailType = "expired"
)

// CompOffDetail is the append-only audit log of earn/use/expire events.
// EarnedMonth ("YYYY-MM") drives monthly expiry.
type CompOffDetail struct {
	ID          string
	EmployeeID  string
	Type        DetailType
	Days        float64
	EarnedMonth string
	Notes       *string
	CreatedAt   time.Time
}
