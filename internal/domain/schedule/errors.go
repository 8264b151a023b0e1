package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleExists   = errors.New("employee already has a schedule for this date")
	ErrInvalidStatus    = errors.New("invalid schedule status")

	// Constraint violations from the validators
	ErrWeeklyQuotaExceeded     = errors.New("weekly shift quota exceeded")
	ErrConsecutiveLimitReached = errors.New("consecutive shift limit reached")

	// Generation errors
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrGenerationLocked   = errors.New("schedule generation already running for this department")

	// Request data errors
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)
