package role

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	DepartmentID string    `json:"department_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	BreakMinutes *int      `json:"break_minutes"`
	DayConfig    DayConfig `json:"day_config"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.BreakMinutes != nil && (*r.BreakMinutes < 0 || *r.BreakMinutes > 240) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be between 0 and 240",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID           string    `json:"-"`
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	BreakMinutes *int      `json:"break_minutes"`
	DayConfig    DayConfig `json:"day_config"`
	IsActive     *bool     `json:"is_active"`
}

type RoleResponse struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	BreakMinutes int       `json:"break_minutes"`
	DayConfig    DayConfig `json:"day_config,omitempty"`
	IsActive     bool      `json:"is_active"`
}
