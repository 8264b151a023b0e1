package schedule

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type CreateScheduleRequest struct {
	EmployeeID string  `json:"employee_id"`
	RoleID     *string `json:"role_id"`
	ShiftID    *string `json:"shift_id"` // nil for custom schedules
	Date       string  `json:"date"`     // YYYY-MM-DD
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	ID        string  `json:"-"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil && !validator.IsValidTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of the known schedule statuses",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleFilter struct {
	DepartmentID string
	EmployeeID   string
	StartDate    string
	EndDate      string
	Statuses     []Status
	Page         int
	Limit        int
}

type ScheduleResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	RoleID       *string `json:"role_id"`
	RoleName     *string `json:"role_name,omitempty"`
	ShiftID      *string `json:"shift_id"`
	ShiftName    *string `json:"shift_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

// ========================================
// GENERATION DTOs
// ========================================

type GenerateScheduleRequest struct {
	DepartmentID string `json:"department_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Regenerate   bool   `json:"regenerate"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OvertimeWarning flags a same-day hour total above the warning threshold
// seen while assigning. Warnings are reported, never rejected.
type OvertimeWarning struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	ShiftName     string  `json:"shift_name"`
	ExistingHours float64 `json:"existing_hours"`
	ShiftHours    float64 `json:"shift_hours"`
	TotalHours    float64 `json:"total_hours"`
}

type GenerateResult struct {
	SchedulesCreated int               `json:"schedules_created"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	Feedback         []string          `json:"feedback"`
	OvertimeWarnings []OvertimeWarning `json:"overtime_warnings"`
}
