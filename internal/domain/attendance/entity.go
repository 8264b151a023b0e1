package attendance

import (
	"time"
)

// CheckInOut is the raw punch record for one working session.
type CheckInOut struct {
	ID           string
	EmployeeID   string
	ScheduleID   *string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       CheckInStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CheckInStatus grades punctuality against the scheduled shift start.
type CheckInStatus string

const (
	CheckInStatusOnTime       CheckInStatus = "on-time"       // at or before shift start
	CheckInStatusSlightlyLate CheckInStatus = "slightly-late" // within 15 minutes
	CheckInStatusLate         CheckInStatus = "late"
)

// Attendance is the realized record for an (employee, date), finalized at
// check-out with worked and overtime hours.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	InTime        *string // "HH:MM"
	OutTime       *string
	WorkedHours   *float64
	BreakMinutes  int
	OvertimeHours *float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	EmployeeName *string
}
