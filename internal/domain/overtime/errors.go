package overtime

import "errors"

var (
	ErrRequestNotFound         = errors.New("overtime request not found")
	ErrRequestAlreadyProcessed = errors.New("overtime request already processed")
	ErrTrackingNotFound        = errors.New("overtime tracking not found")
	ErrInvalidWindow           = errors.New("from_time and to_time must both be set or both empty")
)
