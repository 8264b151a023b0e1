package overtime

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateOvertimeRequestRequest struct {
	EmployeeID   string  `json:"employee_id"`
	RequestDate  string  `json:"request_date"`
	FromTime     *string `json:"from_time"`
	ToTime       *string `json:"to_time"`
	RequestHours float64 `json:"request_hours"`
	Reason       *string `json:"reason"`
}

func (r *CreateOvertimeRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.RequestDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "request_date",
			Message: "request_date must be in YYYY-MM-DD format",
		})
	}
	if (r.FromTime == nil) != (r.ToTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_time",
			Message: "from_time and to_time must both be set or both empty",
		})
	}
	if r.FromTime != nil && !validator.IsValidTime(*r.FromTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_time",
			Message: "from_time must be in HH:MM format",
		})
	}
	if r.ToTime != nil && !validator.IsValidTime(*r.ToTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_time",
			Message: "to_time must be in HH:MM format",
		})
	}
	if r.RequestHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "request_hours",
			Message: "request_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeRequestFilter struct {
	EmployeeID   string
	DepartmentID string
	Status       string
	Page         int
	Limit        int
}

type OvertimeRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	RequestDate  string  `json:"request_date"`
	FromTime     *string `json:"from_time"`
	ToTime       *string `json:"to_time"`
	RequestHours float64 `json:"request_hours"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by"`
	ReviewedAt   *string `json:"reviewed_at"`
}

type TrackingResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	AllocatedHours float64 `json:"allocated_hours"`
	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}
