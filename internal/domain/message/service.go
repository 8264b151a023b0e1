package message

import "context"

type MessageService interface {
	Send(ctx context.Context, req SendMessageRequest) (MessageResponse, error)
	List(ctx context.Context, filter MessageFilter) ([]MessageResponse, int64, error)
	MarkAsRead(ctx context.Context, id string) error
}
