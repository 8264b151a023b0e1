package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/attendance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
)

// slightlyLateGrace is how many minutes past shift start still grade as
// slightly late instead of late.
const slightlyLateGrace = 15

type attendanceServiceImpl struct {
	checkInOutRepo    attendance.CheckInOutRepository
	attendanceRepo    attendance.AttendanceRepository
	scheduleRepo      schedule.ScheduleRepository
	employeeRepo      employee.EmployeeRepository
	roleRepo          role.RoleRepository
	overtimeReqRepo   overtime.OvertimeRequestRepository
	overtimeTrackRepo overtime.OvertimeTrackingRepository
}

func NewAttendanceService(
	checkInOutRepo attendance.CheckInOutRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	roleRepo role.RoleRepository,
	overtimeReqRepo overtime.OvertimeRequestRepository,
	overtimeTrackRepo overtime.OvertimeTrackingRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		checkInOutRepo:    checkInOutRepo,
		attendanceRepo:    attendanceRepo,
		scheduleRepo:      scheduleRepo,
		employeeRepo:      employeeRepo,
		roleRepo:          roleRepo,
		overtimeReqRepo:   overtimeReqRepo,
		overtimeTrackRepo: overtimeTrackRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	open, err := s.checkInOutRepo.GetOpenByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	row, err := s.todaysShift(ctx, emp.ID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	status, minutesLate := gradeCheckIn(now, *row.StartTime)

	session, err := s.checkInOutRepo.Create(ctx, attendance.CheckInOut{
		EmployeeID:  emp.ID,
		ScheduleID:  &row.ID,
		CheckInTime: now,
		Status:      status,
	})
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	// The attendance row is a secondary projection; losing it must not fail
	// the punch.
	inClock := now.Format(clockLayout)
	if _, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       today,
		InTime:     &inClock,
		Status:     string(status),
	}); err != nil {
		slog.Warn("check-in recorded but attendance row write failed",
			"employee_id", emp.ID, "date", today.Format("2006-01-02"), "error", err)
	}

	return attendance.CheckInResponse{
		ID:          session.ID,
		EmployeeID:  session.EmployeeID,
		ScheduleID:  session.ScheduleID,
		CheckInTime: session.CheckInTime.Format(time.RFC3339),
		Status:      string(session.Status),
		MinutesLate: minutesLate,
	}, nil
}

// todaysShift finds the scheduled row with shift times for the date.
func (s *attendanceServiceImpl) todaysShift(ctx context.Context, employeeID string, date time.Time) (*schedule.Schedule, error) {
	rows, err := s.scheduleRepo.GetByEmployeeDateRange(ctx, employeeID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's schedule: %w", err)
	}
	for i := range rows {
		r := &rows[i]
		if (r.Status == schedule.StatusScheduled || r.Status == schedule.StatusCompOffEarned) &&
			r.StartTime != nil && r.EndTime != nil {
			return r, nil
		}
	}
	return nil, attendance.ErrNoScheduleFound
}

// gradeCheckIn compares the punch clock against the shift start.
func gradeCheckIn(now time.Time, shiftStart string) (attendance.CheckInStatus, int) {
	nowMinutes := now.Hour()*60 + now.Minute()
	startMinutes := int(clockHours(shiftStart) * 60)
	late := nowMinutes - startMinutes

	switch {
	case late <= 0:
		return attendance.CheckInStatusOnTime, 0
	case late <= slightlyLateGrace:
		return attendance.CheckInStatusSlightlyLate, late
	default:
		return attendance.CheckInStatusLate, late
	}
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	open, err := s.checkInOutRepo.GetOpenByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}

	now := time.Now()
	session, err := s.checkInOutRepo.SetCheckOut(ctx, open.ID, now)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	shiftEnd, breakMinutes := s.sessionShiftContext(ctx, session)

	date := session.CheckInTime
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	approved, err := s.overtimeReqRepo.GetApprovedByEmployeeDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to load overtime approval: %w", err)
	}

	result := Reconcile(ReconcileInput{
		CheckIn:       session.CheckInTime,
		CheckOut:      now,
		ShiftEnd:      shiftEnd,
		BreakMinutes:  breakMinutes,
		DailyMaxHours: emp.DailyMaxHours,
		Approved:      approved,
	})

	if result.OvertimeHours > 0 {
		if _, err := s.overtimeTrackRepo.AddUsedHours(ctx, emp.ID, day.Year(), int(day.Month()), result.OvertimeHours); err != nil {
			slog.Warn("failed to add used overtime hours",
				"employee_id", emp.ID, "hours", result.OvertimeHours, "error", err)
		}
	}

	s.writeAttendanceRow(ctx, emp.ID, day, session, now, breakMinutes, result)

	return attendance.CheckOutResponse{
		ID:            session.ID,
		EmployeeID:    session.EmployeeID,
		CheckInTime:   session.CheckInTime.Format(time.RFC3339),
		CheckOutTime:  now.Format(time.RFC3339),
		WorkedHours:   result.WorkedHours,
		BreakMinutes:  breakMinutes,
		OvertimeHours: result.OvertimeHours,
		OvertimeNote:  result.Note,
	}, nil
}

// sessionShiftContext resolves the scheduled end clock and break allowance
// for the session, falling back to defaults when the schedule or role is
// gone.
func (s *attendanceServiceImpl) sessionShiftContext(ctx context.Context, session attendance.CheckInOut) (*string, int) {
	breakMinutes := role.DefaultBreakMinutes
	if session.ScheduleID == nil {
		return nil, breakMinutes
	}

	row, err := s.scheduleRepo.GetByID(ctx, *session.ScheduleID)
	if err != nil {
		return nil, breakMinutes
	}
	if row.RoleID != nil {
		if r, err := s.roleRepo.GetByID(ctx, *row.RoleID); err == nil {
			breakMinutes = r.BreakMinutes
		}
	}
	return row.EndTime, breakMinutes
}

// writeAttendanceRow finalizes the secondary attendance projection.
// Best-effort, same as the check-in side.
func (s *attendanceServiceImpl) writeAttendanceRow(ctx context.Context, employeeID string, day time.Time, session attendance.CheckInOut, checkOut time.Time, breakMinutes int, result ReconcileResult) {
	inClock := session.CheckInTime.Format(clockLayout)
	outClock := checkOut.Format(clockLayout)
	worked := result.WorkedHours
	ot := result.RecordedOvertime()

	existing, err := s.attendanceRepo.GetByEmployeeDate(ctx, employeeID, day)
	if err != nil {
		slog.Warn("failed to load attendance row at check-out", "employee_id", employeeID, "error", err)
		return
	}

	if existing == nil {
		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:    employeeID,
			Date:          day,
			InTime:        &inClock,
			OutTime:       &outClock,
			WorkedHours:   &worked,
			BreakMinutes:  breakMinutes,
			OvertimeHours: &ot,
			Status:        string(session.Status),
		})
	} else {
		existing.OutTime = &outClock
		existing.WorkedHours = &worked
		existing.BreakMinutes = breakMinutes
		existing.OvertimeHours = &ot
		_, err = s.attendanceRepo.Update(ctx, *existing)
	}
	if err != nil {
		slog.Warn("check-out recorded but attendance row write failed",
			"employee_id", employeeID, "date", day.Format("2006-01-02"), "error", err)
	}
}

// List implements attendance.AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	rows, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.AttendanceResponse{
			ID:            row.ID,
			EmployeeID:    row.EmployeeID,
			EmployeeName:  row.EmployeeName,
			Date:          row.Date.Format("2006-01-02"),
			InTime:        row.InTime,
			OutTime:       row.OutTime,
			WorkedHours:   row.WorkedHours,
			BreakMinutes:  row.BreakMinutes,
			OvertimeHours: row.OvertimeHours,
			Status:        row.Status,
		})
	}
	return responses, total, nil
}
