package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/attendance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/message"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures carry their own details map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this employee")
	case errors.Is(err, employee.ErrInvalidHourCaps):
		BadRequest(w, "Daily hour cap cannot exceed weekly hour cap", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentCodeExists):
		Conflict(w, "Department code already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has active employees")
	case errors.Is(err, department.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, department.ErrManagerAlreadyAssigned):
		Conflict(w, "Manager already assigned to another department")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists in the department")
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, "Role still has assigned employees or shifts")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists for the role")
	case errors.Is(err, shift.ErrInvalidHeadcount):
		BadRequest(w, "min_emp cannot exceed max_emp", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleExists):
		Conflict(w, "Employee already has a schedule for this date")
	case errors.Is(err, schedule.ErrWeeklyQuotaExceeded):
		Conflict(w, "Weekly shift quota exceeded")
	case errors.Is(err, schedule.ErrConsecutiveLimitReached):
		Conflict(w, "Consecutive shift limit reached")
	case errors.Is(err, schedule.ErrGenerationLocked):
		Conflict(w, "Schedule generation already running for this department")
	case errors.Is(err, schedule.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, schedule.ErrInvalidStatus):
		BadRequest(w, "Invalid schedule status", nil)
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, "Invalid date format, use YYYY-MM-DD", nil)
	case errors.Is(err, schedule.ErrInvalidTimeFormat):
		BadRequest(w, "Invalid time format, use HH:MM", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDurationType):
		BadRequest(w, "Invalid duration type", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Comp-off domain errors
	case errors.Is(err, compoff.ErrRequestNotFound):
		NotFound(w, "Comp-off request not found")
	case errors.Is(err, compoff.ErrRequestAlreadyProcessed):
		Conflict(w, "Comp-off request already processed")
	case errors.Is(err, compoff.ErrDateAlreadyScheduled):
		Conflict(w, "Date already carries a scheduled or completed shift")
	case errors.Is(err, compoff.ErrBalanceExpired):
		// The wrapped message names the day the balance lapsed.
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, compoff.ErrInsufficientBalance):
		BadRequest(w, "Insufficient comp-off balance", nil)
	case errors.Is(err, compoff.ErrTrackingNotFound):
		NotFound(w, "Comp-off tracking not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrTrackingNotFound):
		NotFound(w, "Overtime tracking not found")
	case errors.Is(err, overtime.ErrInvalidWindow):
		BadRequest(w, "from_time and to_time must both be set or both empty", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, "No schedule found for today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open check-in session", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this notification")

	// Message domain errors
	case errors.Is(err, message.ErrMessageNotFound):
		NotFound(w, "Message not found")
	case errors.Is(err, message.ErrRecipientMissing):
		NotFound(w, "Recipient not found")
	case errors.Is(err, message.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this message")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
