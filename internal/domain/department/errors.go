package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentCodeExists = errors.New("department code already exists")
	ErrDepartmentNotEmpty   = errors.New("department still has active employees")

	ErrManagerNotFound        = errors.New("manager not found")
	ErrManagerAlreadyAssigned = errors.New("manager already assigned to another department")
)
