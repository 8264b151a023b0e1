package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/email"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/outcome"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
)

type scheduleServiceImpl struct {
	db                  *database.DB
	scheduleRepo        schedule.ScheduleRepository
	employeeRepo        employee.EmployeeRepository
	shiftRepo           shift.ShiftRepository
	roleRepo            role.RoleRepository
	leaveRepo           leave.LeaveRequestRepository
	overtimeReqRepo     overtime.OvertimeRequestRepository
	overtimeTrackRepo   overtime.OvertimeTrackingRepository
	managerRepo         department.ManagerRepository
	departmentRepo      department.DepartmentRepository
	oracle              calendar.Oracle
	notificationService notification.Service
	emailService        email.EmailService
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	roleRepo role.RoleRepository,
	leaveRepo leave.LeaveRequestRepository,
	overtimeReqRepo overtime.OvertimeRequestRepository,
	overtimeTrackRepo overtime.OvertimeTrackingRepository,
	managerRepo department.ManagerRepository,
	departmentRepo department.DepartmentRepository,
	oracle calendar.Oracle,
	notificationService notification.Service,
	emailService email.EmailService,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:                  db,
		scheduleRepo:        scheduleRepo,
		employeeRepo:        employeeRepo,
		shiftRepo:           shiftRepo,
		roleRepo:            roleRepo,
		leaveRepo:           leaveRepo,
		overtimeReqRepo:     overtimeReqRepo,
		overtimeTrackRepo:   overtimeTrackRepo,
		managerRepo:         managerRepo,
		departmentRepo:      departmentRepo,
		oracle:              oracle,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// Create implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Create(ctx context.Context, req schedule.CreateScheduleRequest) (outcome.Outcome[schedule.ScheduleResponse], error) {
	var zero outcome.Outcome[schedule.ScheduleResponse]

	if err := req.Validate(); err != nil {
		return zero, err
	}

	date, _ := time.Parse(dateKeyLayout, req.Date)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return zero, err
	}

	exists, err := s.scheduleRepo.ExistsForEmployeeDate(ctx, emp.ID, date, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to check existing schedule: %w", err)
	}
	if exists {
		return zero, schedule.ErrScheduleExists
	}

	// Validators see the surrounding weeks so runs crossing the week
	// boundary are counted.
	windowStart := calendar.WeekStart(date).AddDate(0, 0, -MaxConsecutiveDays)
	windowEnd := calendar.WeekStart(date).AddDate(0, 0, 6+MaxConsecutiveDays)
	rows, err := s.scheduleRepo.GetByEmployeeDateRange(ctx, emp.ID, windowStart, windowEnd)
	if err != nil {
		return zero, fmt.Errorf("failed to load schedule window: %w", err)
	}

	if ok, reason := CheckWeeklyQuota(s.oracle, rows, date, ""); !ok {
		return outcome.ValidationFailed[schedule.ScheduleResponse](reason), nil
	}
	if ok, reason := CheckConsecutiveRun(rows, date, ""); !ok {
		return outcome.ValidationFailed[schedule.ScheduleResponse](reason), nil
	}

	breakMinutes := role.DefaultBreakMinutes
	if req.RoleID != nil {
		r, err := s.roleRepo.GetByID(ctx, *req.RoleID)
		if err != nil {
			return zero, err
		}
		breakMinutes = r.BreakMinutes
	}
	shiftHours := WorkHours(req.StartTime, req.EndTime, breakMinutes)

	if out, blocked, err := s.checkHourCaps(ctx, emp, rows, date, shiftHours); err != nil {
		return zero, err
	} else if blocked {
		return out, nil
	}

	startTime := req.StartTime
	endTime := req.EndTime
	created, err := s.scheduleRepo.Create(ctx, schedule.Schedule{
		DepartmentID: emp.DepartmentID,
		EmployeeID:   emp.ID,
		RoleID:       req.RoleID,
		ShiftID:      req.ShiftID,
		Date:         date,
		StartTime:    &startTime,
		EndTime:      &endTime,
		Status:       schedule.StatusScheduled,
		Notes:        req.Notes,
	})
	if err != nil {
		return zero, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.notifyScheduleChange(ctx, emp, created, "A shift was added to your schedule")

	return outcome.Success(toScheduleResponse(created)), nil
}

// checkHourCaps enforces the daily and weekly hour caps on manual creation.
// Breaching either cap is allowed only when an approved overtime request
// covers the date; otherwise the caller gets a confirmation payload with the
// overtime budget so the UI can offer to file one.
func (s *scheduleServiceImpl) checkHourCaps(ctx context.Context, emp employee.Employee, rows []schedule.Schedule, date time.Time, shiftHours float64) (outcome.Outcome[schedule.ScheduleResponse], bool, error) {
	var zero outcome.Outcome[schedule.ScheduleResponse]

	breaks, err := s.loadRoleBreaks(ctx, emp.DepartmentID)
	if err != nil {
		return zero, false, err
	}

	dayHours := 0.0
	weekHours := 0.0
	weekStart := calendar.WeekStart(date)
	weekEnd := weekStart.AddDate(0, 0, 6)
	for _, row := range rows {
		if !schedule.StatusIn(row.Status, schedule.HourCountingStatuses) {
			continue
		}
		if row.StartTime == nil || row.EndTime == nil {
			continue
		}
		breakMinutes := 0
		if row.RoleID != nil {
			breakMinutes = breaks[*row.RoleID]
		}
		hours := WorkHours(*row.StartTime, *row.EndTime, breakMinutes)
		if row.Date.Equal(date) {
			dayHours += hours
		}
		if !row.Date.Before(weekStart) && !row.Date.After(weekEnd) {
			weekHours += hours
		}
	}

	dailyExceeded := dayHours+shiftHours > emp.DailyMaxHours
	weeklyExceeded := weekHours+shiftHours > emp.WeeklyHours
	if !dailyExceeded && !weeklyExceeded {
		return zero, false, nil
	}

	approved, err := s.overtimeReqRepo.GetApprovedByEmployeeDate(ctx, emp.ID, date)
	if err != nil {
		return zero, false, fmt.Errorf("failed to check overtime approval: %w", err)
	}
	if approved != nil {
		return zero, false, nil
	}

	excess := dayHours + shiftHours - emp.DailyMaxHours
	if weeklyExceeded && weekHours+shiftHours-emp.WeeklyHours > excess {
		excess = weekHours + shiftHours - emp.WeeklyHours
	}

	tracking, err := s.overtimeTrackRepo.GetOrCreate(ctx, emp.ID, date.Year(), int(date.Month()))
	if err != nil {
		return zero, false, fmt.Errorf("failed to load overtime tracking: %w", err)
	}

	out := outcome.ConfirmationRequired[schedule.ScheduleResponse](
		"schedule exceeds the employee's hour caps and needs an approved overtime request",
		map[string]interface{}{
			"daily_hours":             dayHours + shiftHours,
			"daily_max_hours":         emp.DailyMaxHours,
			"daily_exceeded":          dailyExceeded,
			"weekly_hours":            weekHours + shiftHours,
			"weekly_max_hours":        emp.WeeklyHours,
			"weekly_exceeded":         weeklyExceeded,
			"required_overtime_hours": excess,
			"overtime_remaining":      tracking.RemainingHours,
			"has_sufficient_ot":       tracking.RemainingHours >= excess,
		},
	)
	return out, true, nil
}

// GetByID implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetByID(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	row, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(row), nil
}

// List implements schedule.ScheduleService.
func (s *scheduleServiceImpl) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.ScheduleResponse, int64, error) {
	rows, total, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]schedule.ScheduleResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toScheduleResponse(row))
	}
	return responses, total, nil
}

// Update implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if req.Date != nil {
		current, err := s.scheduleRepo.GetByID(ctx, req.ID)
		if err != nil {
			return schedule.ScheduleResponse{}, err
		}
		date, _ := time.Parse(dateKeyLayout, *req.Date)
		if !date.Equal(current.Date) {
			exists, err := s.scheduleRepo.ExistsForEmployeeDate(ctx, current.EmployeeID, date, nil)
			if err != nil {
				return schedule.ScheduleResponse{}, fmt.Errorf("failed to check existing schedule: %w", err)
			}
			if exists {
				return schedule.ScheduleResponse{}, schedule.ErrScheduleExists
			}
		}
	}

	updated, err := s.scheduleRepo.Update(ctx, req)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if emp, err := s.employeeRepo.GetByID(ctx, updated.EmployeeID); err == nil {
		s.notifyScheduleChange(ctx, emp, updated, "Your schedule was updated")
	}

	return toScheduleResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.scheduleRepo.Delete(ctx, id)
}

// Generate implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Generate(ctx context.Context, req schedule.GenerateScheduleRequest) (outcome.Outcome[schedule.GenerateResult], error) {
	var zero outcome.Outcome[schedule.GenerateResult]

	if err := req.Validate(); err != nil {
		return zero, err
	}

	startDate, _ := time.Parse(dateKeyLayout, req.StartDate)
	endDate, _ := time.Parse(dateKeyLayout, req.EndDate)
	if startDate.After(endDate) {
		return zero, schedule.ErrInvalidDateRange
	}

	existingCount, err := s.scheduleRepo.CountByDepartmentDateRange(ctx, req.DepartmentID, startDate, endDate)
	if err != nil {
		return zero, fmt.Errorf("failed to count existing schedules: %w", err)
	}
	if existingCount > 0 && !req.Regenerate {
		return outcome.ConfirmationRequired[schedule.GenerateResult](
			"schedules already exist in this date range; resubmit with regenerate to replace generated rows",
			map[string]interface{}{"existing_schedules": existingCount},
		), nil
	}

	var result PlanResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		acquired, err := database.TryTxAdvisoryLock(txCtx, tx, "schedule_generation:"+req.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to acquire generation lock: %w", err)
		}
		if !acquired {
			return schedule.ErrGenerationLocked
		}

		if existingCount > 0 && req.Regenerate {
			if _, err := s.scheduleRepo.DeleteGeneratedInRange(txCtx, req.DepartmentID, startDate, endDate); err != nil {
				return fmt.Errorf("failed to delete generated schedules: %w", err)
			}
		}

		input, err := s.loadPlanInput(txCtx, req.DepartmentID, startDate, endDate)
		if err != nil {
			return err
		}

		result = Plan(input)

		if len(result.Schedules) > 0 {
			if _, err := s.scheduleRepo.CreateBatch(txCtx, result.Schedules); err != nil {
				return fmt.Errorf("failed to persist generated schedules: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	s.notifyGeneration(ctx, req.DepartmentID, result)
	s.emailGeneration(ctx, req, result)

	return outcome.Success(schedule.GenerateResult{
		SchedulesCreated: len(result.Schedules),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Feedback:         result.Feedback,
		OvertimeWarnings: result.OvertimeWarnings,
	}), nil
}

// loadPlanInput gathers the generation snapshot: catalog-ordered employees
// and shifts, role break allowances, approved leave, and enough surrounding
// schedule rows for the validators.
func (s *scheduleServiceImpl) loadPlanInput(ctx context.Context, departmentID string, startDate, endDate time.Time) (PlanInput, error) {
	employees, err := s.employeeRepo.GetActiveByDepartmentID(ctx, departmentID)
	if err != nil {
		return PlanInput{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return PlanInput{}, schedule.ErrDepartmentNotFound
	}

	shifts, err := s.shiftRepo.GetActiveByDepartmentID(ctx, departmentID)
	if err != nil {
		return PlanInput{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	breaks, err := s.loadRoleBreaks(ctx, departmentID)
	if err != nil {
		return PlanInput{}, err
	}

	contextStart := calendar.WeekStart(startDate).AddDate(0, 0, -MaxConsecutiveDays)
	contextEnd := calendar.WeekStart(endDate).AddDate(0, 0, 6+MaxConsecutiveDays)
	existing, err := s.scheduleRepo.GetByDepartmentDateRange(ctx, departmentID, contextStart, contextEnd)
	if err != nil {
		return PlanInput{}, fmt.Errorf("failed to load existing schedules: %w", err)
	}

	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, departmentID, startDate, endDate)
	if err != nil {
		return PlanInput{}, fmt.Errorf("failed to load approved leave: %w", err)
	}

	return PlanInput{
		DepartmentID:     departmentID,
		StartDate:        startDate,
		EndDate:          endDate,
		Employees:        employees,
		Shifts:           shifts,
		RoleBreakMinutes: breaks,
		Existing:         existing,
		ApprovedLeaves:   leaves,
		Oracle:           s.oracle,
	}, nil
}

func (s *scheduleServiceImpl) loadRoleBreaks(ctx context.Context, departmentID string) (map[string]int, error) {
	roles, err := s.roleRepo.GetActiveByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	breaks := make(map[string]int, len(roles))
	for _, r := range roles {
		breaks[r.ID] = r.BreakMinutes
	}
	return breaks, nil
}

// ValidateWeeklyQuota implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ValidateWeeklyQuota(ctx context.Context, employeeID string, dateStr string, excludeID string) (bool, string, error) {
	date, err := time.Parse(dateKeyLayout, dateStr)
	if err != nil {
		return false, "", schedule.ErrInvalidDateFormat
	}
	weekStart := calendar.WeekStart(date)
	rows, err := s.scheduleRepo.GetByEmployeeDateRange(ctx, employeeID, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return false, "", fmt.Errorf("failed to load week schedules: %w", err)
	}
	ok, reason := CheckWeeklyQuota(s.oracle, rows, date, excludeID)
	return ok, reason, nil
}

// ValidateConsecutive implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ValidateConsecutive(ctx context.Context, employeeID string, dateStr string, excludeID string) (bool, string, error) {
	date, err := time.Parse(dateKeyLayout, dateStr)
	if err != nil {
		return false, "", schedule.ErrInvalidDateFormat
	}
	rows, err := s.scheduleRepo.GetByEmployeeDateRange(ctx, employeeID,
		date.AddDate(0, 0, -MaxConsecutiveDays), date.AddDate(0, 0, MaxConsecutiveDays))
	if err != nil {
		return false, "", fmt.Errorf("failed to load surrounding schedules: %w", err)
	}
	ok, reason := CheckConsecutiveRun(rows, date, excludeID)
	return ok, reason, nil
}

// WeekInfo implements schedule.ScheduleService.
func (s *scheduleServiceImpl) WeekInfo(ctx context.Context, weekStart string) (calendar.WeekSummary, error) {
	date, err := time.Parse(dateKeyLayout, weekStart)
	if err != nil {
		return calendar.WeekSummary{}, schedule.ErrInvalidDateFormat
	}
	return calendar.WeekInfo(s.oracle, calendar.WeekStart(date)), nil
}

func (s *scheduleServiceImpl) notifyScheduleChange(ctx context.Context, emp employee.Employee, row schedule.Schedule, message string) {
	if s.notificationService == nil || emp.UserID == nil {
		return
	}
	_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		Type:        notification.TypeScheduleUpdated,
		Title:       "Schedule Updated",
		Message:     fmt.Sprintf("%s on %s", message, row.Date.Format(dateKeyLayout)),
		Data: map[string]interface{}{
			"schedule_id": row.ID,
			"date":        row.Date.Format(dateKeyLayout),
		},
	})
}

// notifyGeneration tells affected employees their schedule is out.
func (s *scheduleServiceImpl) notifyGeneration(ctx context.Context, departmentID string, result PlanResult) {
	if s.notificationService == nil {
		return
	}

	employees, err := s.employeeRepo.GetActiveByDepartmentID(ctx, departmentID)
	if err != nil {
		return
	}

	affected := make(map[string]bool, len(result.Schedules))
	for _, row := range result.Schedules {
		affected[row.EmployeeID] = true
	}

	var reqs []notification.CreateNotificationRequest
	for _, emp := range employees {
		if emp.UserID == nil || !affected[emp.ID] {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			Type:        notification.TypeScheduleGenerated,
			Title:       "New Schedule Published",
			Message:     "A new schedule covering your department has been generated",
			Data: map[string]interface{}{
				"department_id": departmentID,
			},
		})
	}
	if len(reqs) > 0 {
		_ = s.notificationService.QueueBulkNotification(ctx, reqs)
	}
}

// emailGeneration sends the department manager a summary of the run.
func (s *scheduleServiceImpl) emailGeneration(ctx context.Context, req schedule.GenerateScheduleRequest, result PlanResult) {
	if s.emailService == nil || s.managerRepo == nil {
		return
	}

	mgr, err := s.managerRepo.GetByDepartmentID(ctx, req.DepartmentID)
	if err != nil || mgr.Email == nil || *mgr.Email == "" {
		return
	}

	managerName := ""
	if mgr.FullName != nil {
		managerName = *mgr.FullName
	}

	departmentName := req.DepartmentID
	if dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err == nil {
		departmentName = dept.Name
	}

	if err := s.emailService.SendScheduleGenerated(*mgr.Email, managerName, departmentName,
		req.StartDate, req.EndDate, len(result.Schedules), len(result.OvertimeWarnings)); err != nil {
		slog.Warn("failed to send schedule generation email", "department_id", req.DepartmentID, "error", err)
	}
}

func toScheduleResponse(row schedule.Schedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:           row.ID,
		DepartmentID: row.DepartmentID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		RoleID:       row.RoleID,
		RoleName:     row.RoleName,
		ShiftID:      row.ShiftID,
		ShiftName:    row.ShiftName,
		Date:         row.Date.Format(dateKeyLayout),
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		Status:       string(row.Status),
		Notes:        row.Notes,
	}
}
