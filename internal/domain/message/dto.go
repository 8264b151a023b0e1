package message

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	RecipientID string  `json:"recipient_id"`
	Subject     *string `json:"subject"`
	Body        string  `json:"body"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_id",
			Message: "recipient_id is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MessageFilter struct {
	UserID string // sender or recipient
	Unread *bool
	Page   int
	Limit  int
}

type MessageResponse struct {
	ID            string  `json:"id"`
	SenderID      string  `json:"sender_id"`
	SenderName    *string `json:"sender_name,omitempty"`
	RecipientID   string  `json:"recipient_id"`
	RecipientName *string `json:"recipient_name,omitempty"`
	Subject       *string `json:"subject"`
	Body          string  `json:"body"`
	IsRead        bool    `json:"is_read"`
	CreatedAt     string  `json:"created_at"`
}
