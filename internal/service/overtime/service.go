package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/email"
)

const dateLayout = "2006-01-02"

type overtimeServiceImpl struct {
	requestRepo         overtime.OvertimeRequestRepository
	trackingRepo        overtime.OvertimeTrackingRepository
	employeeRepo        employee.EmployeeRepository
	notificationService notification.Service
	emailService        email.EmailService
}

func NewOvertimeService(
	requestRepo overtime.OvertimeRequestRepository,
	trackingRepo overtime.OvertimeTrackingRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
	emailService email.EmailService,
) overtime.OvertimeService {
	return &overtimeServiceImpl{
		requestRepo:         requestRepo,
		trackingRepo:        trackingRepo,
		employeeRepo:        employeeRepo,
		notificationService: notificationService,
		emailService:        emailService,
	}
}

// CreateRequest implements overtime.OvertimeService.
func (s *overtimeServiceImpl) CreateRequest(ctx context.Context, req overtime.CreateOvertimeRequestRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	date, _ := time.Parse(dateLayout, req.RequestDate)

	created, err := s.requestRepo.Create(ctx, overtime.OvertimeRequest{
		EmployeeID:   emp.ID,
		RequestDate:  date,
		FromTime:     req.FromTime,
		ToTime:       req.ToTime,
		RequestHours: req.RequestHours,
		Reason:       req.Reason,
		Status:       overtime.RequestStatusPending,
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return toRequestResponse(created), nil
}

// GetRequest implements overtime.OvertimeService.
func (s *overtimeServiceImpl) GetRequest(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return toRequestResponse(req), nil
}

// ListRequests implements overtime.OvertimeService.
func (s *overtimeServiceImpl) ListRequests(ctx context.Context, filter overtime.OvertimeRequestFilter) ([]overtime.OvertimeRequestResponse, int64, error) {
	reqs, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]overtime.OvertimeRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, total, nil
}

// Approve implements overtime.OvertimeService.
func (s *overtimeServiceImpl) Approve(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	if req.Status != overtime.RequestStatusPending {
		return overtime.OvertimeRequestResponse{}, overtime.ErrRequestAlreadyProcessed
	}

	approved, err := s.requestRepo.UpdateStatus(ctx, id, overtime.RequestStatusApproved, reviewerFromContext(ctx))
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	// Ensure the month's budget row exists so check-out reconciliation has
	// something to draw down.
	if _, err := s.trackingRepo.GetOrCreate(ctx, approved.EmployeeID, approved.RequestDate.Year(), int(approved.RequestDate.Month())); err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to ensure overtime tracking: %w", err)
	}

	s.notifyDecision(ctx, approved, notification.TypeOvertimeApproved, "Overtime Approved",
		fmt.Sprintf("Your overtime request for %s (%.1fh) was approved", approved.RequestDate.Format(dateLayout), approved.RequestHours))

	return toRequestResponse(approved), nil
}

// Reject implements overtime.OvertimeService.
func (s *overtimeServiceImpl) Reject(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	if req.Status != overtime.RequestStatusPending {
		return overtime.OvertimeRequestResponse{}, overtime.ErrRequestAlreadyProcessed
	}

	rejected, err := s.requestRepo.UpdateStatus(ctx, id, overtime.RequestStatusRejected, reviewerFromContext(ctx))
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	s.notifyDecision(ctx, rejected, notification.TypeOvertimeRejected, "Overtime Rejected",
		fmt.Sprintf("Your overtime request for %s was rejected", rejected.RequestDate.Format(dateLayout)))

	return toRequestResponse(rejected), nil
}

// GetTracking implements overtime.OvertimeService.
func (s *overtimeServiceImpl) GetTracking(ctx context.Context, employeeID string, year, month int) (overtime.TrackingResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return overtime.TrackingResponse{}, err
	}

	tracking, err := s.trackingRepo.GetOrCreate(ctx, employeeID, year, month)
	if err != nil {
		return overtime.TrackingResponse{}, err
	}
	return overtime.TrackingResponse{
		EmployeeID:     tracking.EmployeeID,
		Year:           tracking.Year,
		Month:          tracking.Month,
		AllocatedHours: tracking.AllocatedHours,
		UsedHours:      tracking.UsedHours,
		RemainingHours: tracking.RemainingHours,
	}, nil
}

func (s *overtimeServiceImpl) notifyDecision(ctx context.Context, req overtime.OvertimeRequest, notifType notification.NotificationType, title, message string) {
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
				"request_id":   req.ID,
				"request_date": req.RequestDate.Format(dateLayout),
			},
		})
	}

	if s.emailService != nil && emp.Email != "" {
		if err := s.emailService.SendRequestDecision(emp.Email, emp.FullName, "overtime", req.RequestDate.Format(dateLayout), string(req.Status), nil); err != nil {
			slog.Warn("failed to send overtime decision email", "employee_id", emp.ID, "error", err)
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

func toRequestResponse(req overtime.OvertimeRequest) overtime.OvertimeRequestResponse {
	resp := overtime.OvertimeRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		RequestDate:  req.RequestDate.Format(dateLayout),
		FromTime:     req.FromTime,
		ToTime:       req.ToTime,
		RequestHours: req.RequestHours,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ReviewedBy:   req.ReviewedBy,
	}
	if req.ReviewedAt != nil {
		reviewedAt := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
