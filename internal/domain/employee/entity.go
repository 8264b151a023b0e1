package employee

import "time"

type Employee struct {
	ID           string
	UserID       *string
	DepartmentID string
	RoleID       *string // nil = flexible, eligible for any shift in the department
	FullName     string
	Email        string
	PhoneNumber  *string

	WeeklyHours      float64 // cap on scheduled hours per week
	DailyMaxHours    float64 // cap on scheduled hours per day
	ShiftsPerWeek    int
	PaidLeavePerYear int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	DepartmentName *string
	RoleName       *string
}

const (
	DefaultWeeklyHours      = 40.0
	DefaultDailyMaxHours    = 8.0
	DefaultShiftsPerWeek    = 5
	DefaultPaidLeavePerYear = 10
)
