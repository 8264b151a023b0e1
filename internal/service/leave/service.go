package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/email"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type leaveServiceImpl struct {
	db                  *database.DB
	leaveRepo           leave.LeaveRequestRepository
	scheduleRepo        schedule.ScheduleRepository
	employeeRepo        employee.EmployeeRepository
	compOffService      compoff.CompOffService
	notificationService notification.Service
	emailService        email.EmailService
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	compOffService compoff.CompOffService,
	notificationService notification.Service,
	emailService email.EmailService,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:                  db,
		leaveRepo:           leaveRepo,
		scheduleRepo:        scheduleRepo,
		employeeRepo:        employeeRepo,
		compOffService:      compOffService,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// Create implements leave.LeaveService.
func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	durationType := leave.DurationFullDay
	if req.DurationType != "" {
		durationType = leave.DurationType(req.DurationType)
	}

	// Comp-off leave is checked against the ledger up front so employees
	// learn about an expired balance before a manager ever sees the request.
	if leave.LeaveType(req.LeaveType) == leave.LeaveTypeCompOff {
		availability, err := s.compOffService.ValidateAvailable(ctx, emp.ID, startDate)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if !availability.Available {
			if availability.Expired {
				return leave.LeaveRequestResponse{}, fmt.Errorf("%w (balance lapsed on %s)",
					compoff.ErrBalanceExpired, availability.ExpiredOn)
			}
			return leave.LeaveRequestResponse{}, compoff.ErrInsufficientBalance
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:   emp.ID,
		LeaveType:    leave.LeaveType(req.LeaveType),
		DurationType: durationType,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       req.Reason,
		Status:       leave.RequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toLeaveResponse(created), nil
}

// GetByID implements leave.LeaveService.
func (s *leaveServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveResponse(req), nil
}

// List implements leave.LeaveService.
func (s *leaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, int64, error) {
	reqs, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]leave.LeaveRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, toLeaveResponse(r))
	}
	return responses, total, nil
}

// Approve implements leave.LeaveService.
func (s *leaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.ApproveLeaveResult, error) {
	reviewerID := reviewerFromContext(ctx)

	var result leave.ApproveLeaveResult
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		lr, err := s.leaveRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if lr.Status != leave.RequestStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		emp, err := s.employeeRepo.GetByID(txCtx, lr.EmployeeID)
		if err != nil {
			return err
		}

		status := rowStatusFor(lr)
		var leaveDates []time.Time
		for day := lr.StartDate; !day.After(lr.EndDate); day = day.AddDate(0, 0, 1) {
			occupied, err := s.scheduleRepo.ExistsForEmployeeDate(txCtx, emp.ID, day, nil)
			if err != nil {
				return fmt.Errorf("failed to check schedule conflicts: %w", err)
			}
			if occupied {
				result.DaysSkipped++
				continue
			}

			row, err := s.scheduleRepo.Create(txCtx, leaveScheduleRow(emp, day, status))
			if err != nil {
				return fmt.Errorf("failed to create leave schedule row: %w", err)
			}
			result.DaysCreated++
			result.ScheduleRows = append(result.ScheduleRows, row.ID)
			leaveDates = append(leaveDates, day)
		}

		// Comp-off leave draws the created days down from the earned ledger.
		if lr.LeaveType == leave.LeaveTypeCompOff && len(leaveDates) > 0 {
			if err := s.compOffService.Consume(txCtx, emp.ID, leaveDates); err != nil {
				return err
			}
		}

		approved, err := s.leaveRepo.UpdateStatus(txCtx, req.ID, leave.RequestStatusApproved, reviewerID, req.ReviewNotes)
		if err != nil {
			return err
		}
		result.Request = toLeaveResponse(approved)
		return nil
	})
	if err != nil {
		return leave.ApproveLeaveResult{}, err
	}

	s.notifyDecision(ctx, result.Request, notification.TypeLeaveApproved, "Leave Approved",
		fmt.Sprintf("Your %s leave from %s to %s was approved", result.Request.LeaveType, result.Request.StartDate, result.Request.EndDate))

	return result, nil
}

// leaveScheduleRow builds the schedule row one approved leave day turns
// into, including the clock bounds its status dictates.
func leaveScheduleRow(emp employee.Employee, day time.Time, status schedule.Status) schedule.Schedule {
	startTime, endTime := schedule.LeaveClockBounds(status)
	return schedule.Schedule{
		DepartmentID: emp.DepartmentID,
		EmployeeID:   emp.ID,
		Date:         day,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       status,
	}
}

// rowStatusFor maps a request onto the schedule status its days carry.
func rowStatusFor(lr leave.LeaveRequest) schedule.Status {
	switch {
	case lr.LeaveType == leave.LeaveTypeCompOff:
		return schedule.StatusCompOffTaken
	case lr.DurationType == leave.DurationHalfDayMorning:
		return schedule.StatusLeaveHalfMorning
	case lr.DurationType == leave.DurationHalfDayAfternoon:
		return schedule.StatusLeaveHalfAfternoon
	default:
		return schedule.StatusLeave
	}
}

// Reject implements leave.LeaveService.
func (s *leaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if lr.Status != leave.RequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	rejected, err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.RequestStatusRejected, reviewerFromContext(ctx), req.ReviewNotes)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	resp := toLeaveResponse(rejected)
	s.notifyDecision(ctx, resp, notification.TypeLeaveRejected, "Leave Rejected",
		fmt.Sprintf("Your %s leave from %s to %s was rejected", resp.LeaveType, resp.StartDate, resp.EndDate))

	return resp, nil
}

func (s *leaveServiceImpl) notifyDecision(ctx context.Context, resp leave.LeaveRequestResponse, notifType notification.NotificationType, title, message string) {
	emp, err := s.employeeRepo.GetByID(ctx, resp.EmployeeID)
	if err != nil {
		return
	}

	if s.notificationService != nil && emp.UserID != nil {
		_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			Type:        notifType,
			Title:       title,
			Message:     message,
			Data: map[string]interface{}{
				"request_id": resp.ID,
				"start_date": resp.StartDate,
				"end_date":   resp.EndDate,
			},
		})
	}

	if s.emailService != nil && emp.Email != "" {
		if err := s.emailService.SendRequestDecision(emp.Email, emp.FullName, "leave", resp.StartDate, resp.Status, resp.ReviewNotes); err != nil {
			slog.Warn("failed to send leave decision email", "employee_id", emp.ID, "error", err)
		}
	}
}

// reviewerFromContext pulls the acting user's ID out of the JWT claims.
func reviewerFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	if id, ok := claims["user_id"].(string); ok {
		return id
	}
	return ""
}

func toLeaveResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		LeaveType:    string(lr.LeaveType),
		DurationType: string(lr.DurationType),
		StartDate:    lr.StartDate.Format(dateLayout),
		EndDate:      lr.EndDate.Format(dateLayout),
		Reason:       lr.Reason,
		Status:       string(lr.Status),
		ReviewedBy:   lr.ReviewedBy,
		ReviewNotes:  lr.ReviewNotes,
	}
	if lr.ReviewedAt != nil {
		reviewedAt := lr.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
