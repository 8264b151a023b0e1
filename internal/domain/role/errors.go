package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("role not found")
	ErrRoleNameExists = errors.New("role with this name already exists in the department")
	ErrRoleInUse      = errors.New("role still has assigned employees or shifts")
)
