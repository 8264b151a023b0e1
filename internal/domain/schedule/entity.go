package schedule

import "time"

// Schedule is one employee's assignment (or leave/comp-off marker) for one
// date. At most one non-cancelled row may exist per (employee, date).
type Schedule struct {
	ID           string
	DepartmentID string
	EmployeeID   string
	RoleID       *string
	ShiftID      *string
	Date         time.Time
	StartTime    *string // "HH:MM", nil for comp-off-taken rows
	EndTime      *string
	Status       Status
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships (for responses)
	EmployeeName *string
	RoleName     *string
	ShiftName    *string
}

// Status is the closed set of schedule row states. Every branch in the
// generator and the validators switches on it; adding a status means
// revisiting the status sets below.
type Status string

const (
	StatusScheduled          Status = "scheduled"
	StatusCompleted          Status = "completed"
	StatusMissed             Status = "missed"
	StatusCancelled          Status = "cancelled"
	StatusLeave              Status = "leave"
	StatusLeaveHalfMorning   Status = "leave_half_morning"
	StatusLeaveHalfAfternoon Status = "leave_half_afternoon"
	StatusCompOffTaken       Status = "comp_off_taken"
	StatusCompOffEarned      Status = "comp_off_earned"
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusCompleted),
	string(StatusMissed),
	string(StatusCancelled),
	string(StatusLeave),
	string(StatusLeaveHalfMorning),
	string(StatusLeaveHalfAfternoon),
	string(StatusCompOffTaken),
	string(StatusCompOffEarned),
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusMissed, StatusCancelled,
		StatusLeave, StatusLeaveHalfMorning, StatusLeaveHalfAfternoon,
		StatusCompOffTaken, StatusCompOffEarned:
		return true
	}
	return false
}

// WeekdayCoverageStatuses count toward the Mon-Fri weekly quota: worked
// shifts plus leave and comp-off substitutes all occupy a weekday slot.
var WeekdayCoverageStatuses = []Status{
	StatusScheduled,
	StatusLeave,
	StatusCompOffTaken,
	StatusCompOffEarned,
	StatusLeaveHalfMorning,
	StatusLeaveHalfAfternoon,
}

// WeekendRegularStatuses count as regular weekend shifts against the quota.
// Comp-off statuses are excluded: weekend comp-off is a bonus day, not quota.
var WeekendRegularStatuses = []Status{
	StatusScheduled,
	StatusLeave,
	StatusLeaveHalfMorning,
	StatusLeaveHalfAfternoon,
}

// ConsecutiveRunStatuses count toward the consecutive-day run limit.
var ConsecutiveRunStatuses = []Status{
	StatusScheduled,
	StatusLeave,
	StatusCompOffTaken,
	StatusLeaveHalfMorning,
	StatusLeaveHalfAfternoon,
}

// HourCountingStatuses carry worked hours for the daily/weekly hour caps.
var HourCountingStatuses = []Status{
	StatusScheduled,
	StatusCompleted,
	StatusCompOffEarned,
}

// RegenerateDeletableStatuses are the generator-owned rows removed on
// regeneration; everything else is an externally-driven commitment.
var RegenerateDeletableStatuses = []Status{
	StatusScheduled,
	StatusCompOffTaken,
}

// Clock boundaries materialized leave rows carry.
const (
	DayStartClock = "00:00"
	MiddayClock   = "12:00"
	DayEndClock   = "23:59"
)

// LeaveClockBounds returns the start and end clocks a materialized
// leave-family row carries: full-day leave spans the whole day, half days
// split at noon, and comp-off-taken rows carry no times.
func LeaveClockBounds(status Status) (*string, *string) {
	switch status {
	case StatusLeave:
		return clockPtr(DayStartClock), clockPtr(DayEndClock)
	case StatusLeaveHalfMorning:
		return clockPtr(DayStartClock), clockPtr(MiddayClock)
	case StatusLeaveHalfAfternoon:
		return clockPtr(MiddayClock), clockPtr(DayEndClock)
	default:
		return nil, nil
	}
}

func clockPtr(clock string) *string { return &clock }

// StatusIn reports whether s is a member of set.
func StatusIn(s Status, set []Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
