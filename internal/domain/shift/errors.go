package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftNameExists  = errors.New("shift with this name already exists for the role")
	ErrInvalidHeadcount = errors.New("min_emp cannot exceed max_emp")
)
