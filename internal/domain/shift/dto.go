package shift

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	RoleID    string         `json:"role_id"`
	Name      string         `json:"name"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	MinEmp    *int           `json:"min_emp"`
	MaxEmp    *int           `json:"max_emp"`
	DayConfig role.DayConfig `json:"day_config"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.MinEmp != nil && r.MaxEmp != nil && *r.MinEmp > *r.MaxEmp {
		errs = append(errs, validator.ValidationError{
			Field:   "min_emp",
			Message: "min_emp cannot exceed max_emp",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string         `json:"-"`
	Name      *string        `json:"name"`
	StartTime *string        `json:"start_time"`
	EndTime   *string        `json:"end_time"`
	MinEmp    *int           `json:"min_emp"`
	MaxEmp    *int           `json:"max_emp"`
	DayConfig role.DayConfig `json:"day_config"`
	IsActive  *bool          `json:"is_active"`
}

type ShiftResponse struct {
	ID        string         `json:"id"`
	RoleID    string         `json:"role_id"`
	RoleName  *string        `json:"role_name,omitempty"`
	Name      string         `json:"name"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	MinEmp    int            `json:"min_emp"`
	MaxEmp    int            `json:"max_emp"`
	DayConfig role.DayConfig `json:"day_config,omitempty"`
	IsActive  bool           `json:"is_active"`
}
