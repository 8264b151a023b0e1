package compoff

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateCompOffRequestRequest struct {
	EmployeeID  string  `json:"employee_id"`
	CompOffDate string  `json:"comp_off_date"`
	Reason      *string `json:"reason"`
}

func (r *CreateCompOffRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.CompOffDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "comp_off_date",
			Message: "comp_off_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompOffRequestFilter struct {
	EmployeeID   string
	DepartmentID string
	Status       string
	Page         int
	Limit        int
}

type CompOffRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	CompOffDate  string  `json:"comp_off_date"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	ScheduleID   *string `json:"schedule_id"`
	ReviewedBy   *string `json:"reviewed_by"`
	ReviewedAt   *string `json:"reviewed_at"`
}

type TrackingResponse struct {
	EmployeeID    string  `json:"employee_id"`
	EarnedDays    float64 `json:"earned_days"`
	UsedDays      float64 `json:"used_days"`
	ExpiredDays   float64 `json:"expired_days"`
	AvailableDays float64 `json:"available_days"`
}

// MonthBreakdown summarizes one earning month of the ledger.
type MonthBreakdown struct {
	Month         string  `json:"month"` // YYYY-MM
	EarnedDays    float64 `json:"earned_days"`
	UsedDays      float64 `json:"used_days"`
	ExpiredDays   float64 `json:"expired_days"`
	AvailableDays float64 `json:"available_days"`
	ExpiryDate    string  `json:"expiry_date"` // last day of the month
	Expired       bool    `json:"expired"`
}

// AvailabilityResult answers "can this employee take comp-off on date D".
type AvailabilityResult struct {
	Available     bool    `json:"available"`
	AvailableDays float64 `json:"available_days"`
	Message       string  `json:"message,omitempty"`
	// Expired marks a balance that lapsed rather than one never earned;
	// ExpiredOn is the last day of the lapsed earning month.
	Expired   bool   `json:"expired,omitempty"`
	ExpiredOn string `json:"expired_on,omitempty"`
}
