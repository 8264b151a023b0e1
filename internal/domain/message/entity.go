package message

import "time"

// Message is a direct message between two users.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Subject     *string
	Body        string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time

	SenderName    *string
	RecipientName *string
}
