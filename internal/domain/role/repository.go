package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context, departmentID string, page, limit int) ([]Role, int64, error)
	// GetActiveByDepartmentID returns active roles in catalog order.
	GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]Role, error)
	Update(ctx context.Context, req UpdateRoleRequest) (Role, error)
	Delete(ctx context.Context, id string) error
}
