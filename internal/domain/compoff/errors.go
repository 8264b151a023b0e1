package compoff

import "errors"

var (
	ErrRequestNotFound         = errors.New("comp-off request not found")
	ErrRequestAlreadyProcessed = errors.New("comp-off request already processed")
	ErrDateAlreadyScheduled    = errors.New("cannot earn comp-off on a date with a scheduled or completed shift")
	ErrBalanceExpired          = errors.New("comp-off expires at end of the month earned")
	ErrInsufficientBalance     = errors.New("insufficient comp-off balance")
	ErrTrackingNotFound        = errors.New("comp-off tracking not found")
)
