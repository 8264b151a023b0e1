package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrUnauthorized            = errors.New("unauthorized to access this employee")
	ErrInvalidHourCaps         = errors.New("daily hour cap cannot exceed weekly hour cap")
)
