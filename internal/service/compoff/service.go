package compoff

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/email"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

// earnBlockingStatuses are the schedule states that rule a date out for
// earning comp-off: the employee is already expected (or known) to work it.
var earnBlockingStatuses = []schedule.Status{
	schedule.StatusScheduled,
	schedule.StatusCompleted,
}

type compOffServiceImpl struct {
	db                  *database.DB
	requestRepo         compoff.CompOffRequestRepository
	trackingRepo        compoff.CompOffTrackingRepository
	detailRepo          compoff.CompOffDetailRepository
	scheduleRepo        schedule.ScheduleRepository
	employeeRepo        employee.EmployeeRepository
	shiftRepo           shift.ShiftRepository
	notificationService notification.Service
	emailService        email.EmailService
}

func NewCompOffService(
	db *database.DB,
	requestRepo compoff.CompOffRequestRepository,
	trackingRepo compoff.CompOffTrackingRepository,
	detailRepo compoff.CompOffDetailRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	notificationService notification.Service,
	emailService email.EmailService,
) compoff.CompOffService {
	return &compOffServiceImpl{
		db:                  db,
		requestRepo:         requestRepo,
		trackingRepo:        trackingRepo,
		detailRepo:          detailRepo,
		scheduleRepo:        scheduleRepo,
		employeeRepo:        employeeRepo,
		shiftRepo:           shiftRepo,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// CreateRequest implements compoff.CompOffService.
func (s *compOffServiceImpl) CreateRequest(ctx context.Context, req compoff.CreateCompOffRequestRequest) (compoff.CompOffRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return compoff.CompOffRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return compoff.CompOffRequestResponse{}, err
	}

	date, _ := time.Parse(dateLayout, req.CompOffDate)

	blocked, err := s.scheduleRepo.ExistsForEmployeeDate(ctx, emp.ID, date, earnBlockingStatuses)
	if err != nil {
		return compoff.CompOffRequestResponse{}, fmt.Errorf("failed to check schedule conflicts: %w", err)
	}
	if blocked {
		return compoff.CompOffRequestResponse{}, compoff.ErrDateAlreadyScheduled
	}

	created, err := s.requestRepo.Create(ctx, compoff.CompOffRequest{
		EmployeeID:  emp.ID,
		CompOffDate: date,
		Reason:      req.Reason,
		Status:      compoff.RequestStatusPending,
	})
	if err != nil {
		return compoff.CompOffRequestResponse{}, fmt.Errorf("failed to create comp-off request: %w", err)
	}

	return toRequestResponse(created), nil
}

// GetRequest implements compoff.CompOffService.
func (s *compOffServiceImpl) GetRequest(ctx context.Context, id string) (compoff.CompOffRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return compoff.CompOffRequestResponse{}, err
	}
	return toRequestResponse(req), nil
}

// ListRequests implements compoff.CompOffService.
func (s *compOffServiceImpl) ListRequests(ctx context.Context, filter compoff.CompOffRequestFilter) ([]compoff.CompOffRequestResponse, int64, error) {
	reqs, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]compoff.CompOffRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, total, nil
}

// Approve implements compoff.CompOffService.
func (s *compOffServiceImpl) Approve(ctx context.Context, id string) (compoff.CompOffRequestResponse, error) {
	reviewerID := reviewerFromContext(ctx)

	var approved compoff.CompOffRequest
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		req, err := s.requestRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if req.Status != compoff.RequestStatusPending {
			return compoff.ErrRequestAlreadyProcessed
		}

		// Re-check under the transaction: the date must still be free of a
		// scheduled or completed shift.
		blocked, err := s.scheduleRepo.ExistsForEmployeeDate(txCtx, req.EmployeeID, req.CompOffDate, earnBlockingStatuses)
		if err != nil {
			return fmt.Errorf("failed to check schedule conflicts: %w", err)
		}
		if blocked {
			return compoff.ErrDateAlreadyScheduled
		}

		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		row := schedule.Schedule{
			DepartmentID: emp.DepartmentID,
			EmployeeID:   emp.ID,
			Date:         req.CompOffDate,
			Status:       schedule.StatusCompOffEarned,
		}
		if sh := s.typicalShift(txCtx, emp, req.CompOffDate); sh != nil {
			roleID := sh.RoleID
			shiftID := sh.ID
			startTime := sh.StartTime
			endTime := sh.EndTime
			row.RoleID = &roleID
			row.ShiftID = &shiftID
			row.StartTime = &startTime
			row.EndTime = &endTime
		}
		createdRow, err := s.scheduleRepo.Create(txCtx, row)
		if err != nil {
			return fmt.Errorf("failed to create earned schedule row: %w", err)
		}

		if _, err := s.trackingRepo.ApplyDelta(txCtx, emp.ID, 1, 0, 0); err != nil {
			return fmt.Errorf("failed to update comp-off tracking: %w", err)
		}
		if _, err := s.detailRepo.Create(txCtx, compoff.CompOffDetail{
			EmployeeID:  emp.ID,
			Type:        compoff.DetailTypeEarned,
			Days:        1,
			EarnedMonth: MonthKey(req.CompOffDate),
			Notes:       req.Reason,
		}); err != nil {
			return fmt.Errorf("failed to append comp-off detail: %w", err)
		}

		approved, err = s.requestRepo.UpdateStatus(txCtx, id, compoff.RequestStatusApproved, reviewerID, &createdRow.ID)
		return err
	})
	if err != nil {
		return compoff.CompOffRequestResponse{}, err
	}

	s.notifyDecision(ctx, approved, notification.TypeCompOffApproved, "Comp-Off Approved",
		fmt.Sprintf("You earned a comp-off day for working %s; it expires at the end of that month", approved.CompOffDate.Format(dateLayout)))

	return toRequestResponse(approved), nil
}

// typicalShift picks the first catalog shift the employee could work on the
// date's weekday; nil when the department has none.
func (s *compOffServiceImpl) typicalShift(ctx context.Context, emp employee.Employee, date time.Time) *shift.Shift {
	shifts, err := s.shiftRepo.GetActiveByDepartmentID(ctx, emp.DepartmentID)
	if err != nil {
		return nil
	}
	for i := range shifts {
		sh := &shifts[i]
		if emp.RoleID != nil && *emp.RoleID != sh.RoleID {
			continue
		}
		if !sh.DayConfig.RunsOn(date.Weekday()) {
			continue
		}
		return sh
	}
	return nil
}

// Reject implements compoff.CompOffService.
func (s *compOffServiceImpl) Reject(ctx context.Context, id string) (compoff.CompOffRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return compoff.CompOffRequestResponse{}, err
	}
	if req.Status != compoff.RequestStatusPending {
		return compoff.CompOffRequestResponse{}, compoff.ErrRequestAlreadyProcessed
	}

	rejected, err := s.requestRepo.UpdateStatus(ctx, id, compoff.RequestStatusRejected, reviewerFromContext(ctx), nil)
	if err != nil {
		return compoff.CompOffRequestResponse{}, err
	}

	s.notifyDecision(ctx, rejected, notification.TypeCompOffRejected, "Comp-Off Rejected",
		fmt.Sprintf("Your comp-off request for %s was rejected", rejected.CompOffDate.Format(dateLayout)))

	return toRequestResponse(rejected), nil
}

// GetTracking implements compoff.CompOffService.
func (s *compOffServiceImpl) GetTracking(ctx context.Context, employeeID string) (compoff.TrackingResponse, error) {
	tracking, err := s.trackingRepo.GetOrCreateByEmployeeID(ctx, employeeID)
	if err != nil {
		return compoff.TrackingResponse{}, err
	}
	return compoff.TrackingResponse{
		EmployeeID:    tracking.EmployeeID,
		EarnedDays:    tracking.EarnedDays,
		UsedDays:      tracking.UsedDays,
		ExpiredDays:   tracking.ExpiredDays,
		AvailableDays: tracking.AvailableDays(),
	}, nil
}

// MonthlyBreakdown implements compoff.CompOffService.
func (s *compOffServiceImpl) MonthlyBreakdown(ctx context.Context, employeeID string) ([]compoff.MonthBreakdown, error) {
	details, err := s.detailRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyBreakdown(details, time.Now()), nil
}

// ValidateAvailable implements compoff.CompOffService.
func (s *compOffServiceImpl) ValidateAvailable(ctx context.Context, employeeID string, date time.Time) (compoff.AvailabilityResult, error) {
	details, err := s.detailRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return compoff.AvailabilityResult{}, err
	}

	// Only balance earned in the same month is usable on the date.
	monthKey := MonthKey(date)
	available := AvailableInMonth(details, monthKey)
	if available > 0 {
		return compoff.AvailabilityResult{Available: true, AvailableDays: available}, nil
	}

	if lapsed := LatestLapsedMonthBefore(details, monthKey); lapsed != "" {
		return compoff.AvailabilityResult{
			Available: false,
			Expired:   true,
			ExpiredOn: monthEndDate(lapsed),
			Message:   expiredBalanceError(lapsed).Error(),
		}, nil
	}
	return compoff.AvailabilityResult{Available: false, Message: compoff.ErrInsufficientBalance.Error()}, nil
}

// Consume implements compoff.CompOffService.
func (s *compOffServiceImpl) Consume(ctx context.Context, employeeID string, dates []time.Time) error {
	details, err := s.detailRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}

	needed := make(map[string]float64)
	for _, date := range dates {
		needed[MonthKey(date)]++
	}
	for monthKey, days := range needed {
		if AvailableInMonth(details, monthKey) < days {
			if lapsed := LatestLapsedMonthBefore(details, monthKey); lapsed != "" {
				return expiredBalanceError(lapsed)
			}
			return compoff.ErrInsufficientBalance
		}
	}

	for monthKey, days := range needed {
		if _, err := s.trackingRepo.ApplyDelta(ctx, employeeID, 0, days, 0); err != nil {
			return fmt.Errorf("failed to update comp-off tracking: %w", err)
		}
		if _, err := s.detailRepo.Create(ctx, compoff.CompOffDetail{
			EmployeeID:  employeeID,
			Type:        compoff.DetailTypeUsed,
			Days:        days,
			EarnedMonth: monthKey,
		}); err != nil {
			return fmt.Errorf("failed to append comp-off detail: %w", err)
		}
	}
	return nil
}

// ExpireOutdated implements compoff.CompOffService.
func (s *compOffServiceImpl) ExpireOutdated(ctx context.Context, now time.Time) (float64, error) {
	trackings, err := s.trackingRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	totalExpired := 0.0
	for _, tracking := range trackings {
		details, err := s.detailRepo.GetByEmployeeID(ctx, tracking.EmployeeID)
		if err != nil {
			return totalExpired, err
		}

		months := make(map[string]bool)
		for _, d := range details {
			if d.Type == compoff.DetailTypeEarned && MonthExpired(d.EarnedMonth, now) {
				months[d.EarnedMonth] = true
			}
		}

		for monthKey := range months {
			remaining := AvailableInMonth(details, monthKey)
			if remaining <= 0 {
				continue
			}

			err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
				txCtx := postgresql.TxContext(ctx, tx)
				if _, err := s.trackingRepo.ApplyDelta(txCtx, tracking.EmployeeID, 0, 0, remaining); err != nil {
					return err
				}
				_, err := s.detailRepo.Create(txCtx, compoff.CompOffDetail{
					EmployeeID:  tracking.EmployeeID,
					Type:        compoff.DetailTypeExpired,
					Days:        remaining,
					EarnedMonth: monthKey,
				})
				return err
			})
			if err != nil {
				return totalExpired, fmt.Errorf("failed to expire comp-off for employee %s: %w", tracking.EmployeeID, err)
			}
			totalExpired += remaining

			s.notifyExpiry(ctx, tracking.EmployeeID, monthKey, remaining)
		}
	}
	return totalExpired, nil
}

func (s *compOffServiceImpl) notifyDecision(ctx context.Context, req compoff.CompOffRequest, notifType notification.NotificationType, title, message string) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
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
				"request_id":    req.ID,
				"comp_off_date": req.CompOffDate.Format(dateLayout),
			},
		})
	}

	if s.emailService != nil && emp.Email != "" {
		if err := s.emailService.SendRequestDecision(emp.Email, emp.FullName, "comp-off", req.CompOffDate.Format(dateLayout), string(req.Status), nil); err != nil {
			slog.Warn("failed to send comp-off decision email", "employee_id", emp.ID, "error", err)
		}
	}
}

func (s *compOffServiceImpl) notifyExpiry(ctx context.Context, employeeID, monthKey string, days float64) {
	if s.notificationService == nil {
		return
	}
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		Type:        notification.TypeCompOffExpired,
		Title:       "Comp-Off Expired",
		Message:     fmt.Sprintf("%.1f comp-off day(s) earned in %s expired unused", days, monthKey),
		Data: map[string]interface{}{
			"month": monthKey,
			"days":  days,
		},
	})
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

func toRequestResponse(req compoff.CompOffRequest) compoff.CompOffRequestResponse {
	resp := compoff.CompOffRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		CompOffDate:  req.CompOffDate.Format(dateLayout),
		Reason:       req.Reason,
		Status:       string(req.Status),
		ScheduleID:   req.ScheduleID,
		ReviewedBy:   req.ReviewedBy,
	}
	if req.ReviewedAt != nil {
		reviewedAt := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
