package leave

import (
	"strings"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID   string  `json:"employee_id"`
	LeaveType    string  `json:"leave_type"`
	DurationType string  `json:"duration_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: " + strings.Join(LeaveTypeValues, ", "),
		})
	}
	if r.DurationType != "" && !validator.IsInSlice(r.DurationType, DurationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of: " + strings.Join(DurationTypeValues, ", "),
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

type ReviewLeaveRequestRequest struct {
	ID          string  `json:"-"`
	ReviewNotes *string `json:"review_notes"`
}

type LeaveRequestFilter struct {
	EmployeeID   string
	DepartmentID string
	Status       string
	Page         int
	Limit        int
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	DurationType string  `json:"duration_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by"`
	ReviewedAt   *string `json:"reviewed_at"`
	ReviewNotes  *string `json:"review_notes"`
}

// ApproveLeaveResult reports what approval materialized.
type ApproveLeaveResult struct {
	Request      LeaveRequestResponse `json:"request"`
	DaysCreated  int                  `json:"days_created"`
	DaysSkipped  int                  `json:"days_skipped"`
	ScheduleRows []string             `json:"schedule_row_ids"`
}
