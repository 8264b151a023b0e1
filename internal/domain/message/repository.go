package message

import "context"

type MessageRepository interface {
	Create(ctx context.Context, msg Message) (Message, error)
	GetByID(ctx context.Context, id string) (Message, error)
	List(ctx context.Context, filter MessageFilter) ([]Message, int64, error)
	MarkAsRead(ctx context.Context, id, recipientID string) error
}
