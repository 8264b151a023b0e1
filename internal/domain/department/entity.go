package department

import "time"

type Department struct {
	ID          string
	Name        string
	Code        string // short unique code, e.g. "ENG"
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	ManagerID   *string
	ManagerName *string
}

// Manager links a user to the single department they manage.
type Manager struct {
	ID           string
	UserID       string
	DepartmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FullName *string
	Email    *string
}
