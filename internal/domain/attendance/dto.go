package attendance

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	ScheduleID  *string `json:"schedule_id"`
	CheckInTime string  `json:"check_in_time"`
	Status      string  `json:"status"`
	MinutesLate int     `json:"minutes_late"`
}

type CheckOutResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	CheckInTime   string   `json:"check_in_time"`
	CheckOutTime  string   `json:"check_out_time"`
	WorkedHours   float64  `json:"worked_hours"`
	BreakMinutes  int      `json:"break_minutes"`
	OvertimeHours float64  `json:"overtime_hours"`
	OvertimeNote  *string  `json:"overtime_note,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID   string
	DepartmentID string
	StartDate    string
	EndDate      string
	Page         int
	Limit        int
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	InTime        *string  `json:"in_time"`
	OutTime       *string  `json:"out_time"`
	WorkedHours   *float64 `json:"worked_hours"`
	BreakMinutes  int      `json:"break_minutes"`
	OvertimeHours *float64 `json:"overtime_hours"`
	Status        string   `json:"status"`
}
