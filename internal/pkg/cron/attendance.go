package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/attendance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
)

const (
	clockLayout = "15:04"
	// staleAfter is how long a session may stay open before the nightly job
	// closes it.
	staleAfter = 18 * time.Hour
	// fallbackSessionHours caps an auto-closed session when the scheduled end
	// time is unknown.
	fallbackSessionHours = 8
)

// AttendanceJobs closes working sessions employees forgot to check out of.
type AttendanceJobs struct {
	checkInOutRepo  attendance.CheckInOutRepository
	attendanceRepo  attendance.AttendanceRepository
	scheduleRepo    schedule.ScheduleRepository
	employeeRepo    employee.EmployeeRepository
	notificationSvc notification.Service
}

func NewAttendanceJobs(
	checkInOutRepo attendance.CheckInOutRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		checkInOutRepo:  checkInOutRepo,
		attendanceRepo:  attendanceRepo,
		scheduleRepo:    scheduleRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
}

// AutoCloseStaleSessions checks out sessions left open past their scheduled
// end. The close time is the scheduled shift end when known, otherwise the
// check-in plus a fallback working day. Auto-closed days never earn overtime;
// the attendance row is flagged so managers can correct it.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale sessions job")

	sessions, err := j.checkInOutRepo.GetStaleOpen(ctx, time.Now().UTC().Add(-staleAfter))
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}
	if len(sessions) == 0 {
		slog.Info("Cron: No stale sessions found")
		return nil
	}

	closedCount := 0
	for _, session := range sessions {
		closeTime := j.closeTimeFor(ctx, session)

		if _, err := j.checkInOutRepo.SetCheckOut(ctx, session.ID, closeTime); err != nil {
			slog.Error("Cron: Failed to auto-close session",
				"session_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		j.recordAttendance(ctx, session, closeTime)
		j.notifyAutoClose(ctx, session)
		closedCount++
	}

	slog.Info("Cron: Auto-closed stale sessions", "count", closedCount)
	return nil
}

// closeTimeFor resolves when the session should have ended.
func (j *AttendanceJobs) closeTimeFor(ctx context.Context, session attendance.CheckInOut) time.Time {
	fallback := session.CheckInTime.Add(fallbackSessionHours * time.Hour)
	if session.ScheduleID == nil {
		return fallback
	}

	row, err := j.scheduleRepo.GetByID(ctx, *session.ScheduleID)
	if err != nil || row.EndTime == nil {
		return fallback
	}
	end, err := time.Parse(clockLayout, *row.EndTime)
	if err != nil {
		return fallback
	}

	closeTime := time.Date(
		row.Date.Year(), row.Date.Month(), row.Date.Day(),
		end.Hour(), end.Minute(), 0, 0, time.UTC,
	)
	// Overnight shift: the end clock reads before the check-in clock.
	if closeTime.Before(session.CheckInTime) {
		closeTime = closeTime.Add(24 * time.Hour)
	}
	return closeTime
}

// recordAttendance writes the realized day unless check-out reconciliation
// already did.
func (j *AttendanceJobs) recordAttendance(ctx context.Context, session attendance.CheckInOut, closeTime time.Time) {
	date := session.CheckInTime.UTC().Truncate(24 * time.Hour)
	existing, err := j.attendanceRepo.GetByEmployeeDate(ctx, session.EmployeeID, date)
	if err != nil || existing != nil {
		return
	}

	inTime := session.CheckInTime.Format(clockLayout)
	outTime := closeTime.Format(clockLayout)
	worked := closeTime.Sub(session.CheckInTime).Hours()

	if _, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  session.EmployeeID,
		Date:        date,
		InTime:      &inTime,
		OutTime:     &outTime,
		WorkedHours: &worked,
		Status:      "auto-closed",
	}); err != nil {
		slog.Error("Cron: Failed to record auto-closed attendance",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"error", err)
	}
}

func (j *AttendanceJobs) notifyAutoClose(ctx context.Context, session attendance.CheckInOut) {
	if j.notificationSvc == nil {
		return
	}
	emp, err := j.employeeRepo.GetByID(ctx, session.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	date := session.CheckInTime.UTC().Format("2006-01-02")
	_ = j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		Type:        notification.TypeAttendanceAutoClosed,
		Title:       "Attendance Auto-Closed",
		Message:     fmt.Sprintf("You did not check out on %s, so the session was closed automatically. Contact your manager if this is incorrect.", date),
		Data: map[string]interface{}{
			"session_id": session.ID,
			"date":       date,
		},
	})
}
