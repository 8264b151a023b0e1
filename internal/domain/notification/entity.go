package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeScheduleGenerated NotificationType = "schedule_generated"
	TypeScheduleUpdated   NotificationType = "schedule_updated"
	TypeLeaveRequest      NotificationType = "leave_request"
	TypeLeaveApproved     NotificationType = "leave_approved"
	TypeLeaveRejected     NotificationType = "leave_rejected"
	TypeCompOffRequest    NotificationType = "comp_off_request"
	TypeCompOffApproved   NotificationType = "comp_off_approved"
	TypeCompOffRejected   NotificationType = "comp_off_rejected"
	TypeCompOffExpired    NotificationType = "comp_off_expired"
	TypeOvertimeRequest   NotificationType = "overtime_request"
	TypeOvertimeApproved  NotificationType = "overtime_approved"
	TypeOvertimeRejected  NotificationType = "overtime_rejected"
	TypeUnderstaffed      NotificationType = "understaffed_warning"
	TypeNewMessage        NotificationType = "new_message"

	TypeAttendanceAutoClosed NotificationType = "attendance_auto_closed"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
