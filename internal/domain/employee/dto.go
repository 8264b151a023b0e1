package employee

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	DepartmentID     string   `json:"department_id"`
	RoleID           *string  `json:"role_id"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	PhoneNumber      *string  `json:"phone_number"`
	WeeklyHours      *float64 `json:"weekly_hours"`
	DailyMaxHours    *float64 `json:"daily_max_hours"`
	ShiftsPerWeek    *int     `json:"shifts_per_week"`
	PaidLeavePerYear *int     `json:"paid_leave_per_year"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if r.WeeklyHours != nil && *r.WeeklyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours",
			Message: "weekly_hours must be positive",
		})
	}
	if r.DailyMaxHours != nil && *r.DailyMaxHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_max_hours",
			Message: "daily_max_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string   `json:"-"`
	RoleID           *string  `json:"role_id"`
	FullName         *string  `json:"full_name"`
	PhoneNumber      *string  `json:"phone_number"`
	WeeklyHours      *float64 `json:"weekly_hours"`
	DailyMaxHours    *float64 `json:"daily_max_hours"`
	ShiftsPerWeek    *int     `json:"shifts_per_week"`
	PaidLeavePerYear *int     `json:"paid_leave_per_year"`
	IsActive         *bool    `json:"is_active"`
}

type EmployeeFilter struct {
	DepartmentID string
	RoleID       string
	IsActive     *bool
	Search       string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	DepartmentID     string  `json:"department_id"`
	DepartmentName   *string `json:"department_name,omitempty"`
	RoleID           *string `json:"role_id"`
	RoleName         *string `json:"role_name,omitempty"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	PhoneNumber      *string `json:"phone_number"`
	WeeklyHours      float64 `json:"weekly_hours"`
	DailyMaxHours    float64 `json:"daily_max_hours"`
	ShiftsPerWeek    int     `json:"shifts_per_week"`
	PaidLeavePerYear int     `json:"paid_leave_per_year"`
	IsActive         bool    `json:"is_active"`
}
