package message

import "errors"

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrRecipientMissing = errors.New("recipient not found")
	ErrUnauthorized     = errors.New("unauthorized to access this message")
)
