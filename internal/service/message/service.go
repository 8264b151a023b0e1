package message

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/message"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/notification"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
)

type messageServiceImpl struct {
	messageRepo         message.MessageRepository
	userRepo            user.UserRepository
	notificationService notification.Service
}

func NewMessageService(
	messageRepo message.MessageRepository,
	userRepo user.UserRepository,
	notificationService notification.Service,
) message.MessageService {
	return &messageServiceImpl{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Send implements message.MessageService.
func (s *messageServiceImpl) Send(ctx context.Context, req message.SendMessageRequest) (message.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return message.MessageResponse{}, err
	}

	senderID := senderFromContext(ctx)
	if senderID == "" {
		return message.MessageResponse{}, message.ErrUnauthorized
	}

	if _, err := s.userRepo.GetByID(ctx, req.RecipientID); err != nil {
		if err == pgx.ErrNoRows || err == user.ErrUserNotFound {
			return message.MessageResponse{}, message.ErrRecipientMissing
		}
		return message.MessageResponse{}, fmt.Errorf("failed to get recipient: %w", err)
	}

	created, err := s.messageRepo.Create(ctx, message.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	})
	if err != nil {
		return message.MessageResponse{}, fmt.Errorf("failed to create message: %w", err)
	}

	if s.notificationService != nil {
		title := "New Message"
		if req.Subject != nil && *req.Subject != "" {
			title = *req.Subject
		}
		_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: req.RecipientID,
			SenderID:    &senderID,
			Type:        notification.TypeNewMessage,
			Title:       title,
			Message:     "You have a new message",
			Data: map[string]interface{}{
				"message_id": created.ID,
			},
		})
	}

	return toMessageResponse(created), nil
}

// List implements message.MessageService.
func (s *messageServiceImpl) List(ctx context.Context, filter message.MessageFilter) ([]message.MessageResponse, int64, error) {
	if filter.UserID == "" {
		filter.UserID = senderFromContext(ctx)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	messages, total, err := s.messageRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]message.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, toMessageResponse(m))
	}
	return responses, total, nil
}

// MarkAsRead implements message.MessageService. Only the recipient may mark
// a message as read.
func (s *messageServiceImpl) MarkAsRead(ctx context.Context, id string) error {
	userID := senderFromContext(ctx)
	if userID == "" {
		return message.ErrUnauthorized
	}

	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return message.ErrMessageNotFound
		}
		return err
	}
	if msg.RecipientID != userID {
		return message.ErrUnauthorized
	}

	return s.messageRepo.MarkAsRead(ctx, id, userID)
}

func senderFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	if id, ok := claims["user_id"].(string); ok {
		return id
	}
	return ""
}

func toMessageResponse(m message.Message) message.MessageResponse {
	return message.MessageResponse{
		ID:            m.ID,
		SenderID:      m.SenderID,
		SenderName:    m.SenderName,
		RecipientID:   m.RecipientID,
		RecipientName: m.RecipientName,
		Subject:       m.Subject,
		Body:          m.Body,
		IsRead:        m.IsRead,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}
