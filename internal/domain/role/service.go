package role

import "context"

type RoleService interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	List(ctx context.Context, departmentID string, page, limit int) ([]RoleResponse, int64, error)
	Update(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}
