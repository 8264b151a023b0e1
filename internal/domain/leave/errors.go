package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
	ErrInvalidDurationType          = errors.New("invalid duration type")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
)
