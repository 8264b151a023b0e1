package shift

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
)

// Shift is a named time window belonging to a role. Times are "HH:MM" and
// may cross midnight (end < start).
type Shift struct {
	ID        string
	RoleID    string
	Name      string
	StartTime string
	EndTime   string
	MinEmp    int
	MaxEmp    int
	DayConfig role.DayConfig // per-weekday enable map, empty = legacy all days
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	RoleName *string
}

const (
	DefaultMinEmp = 1
	DefaultMaxEmp = 10
)
