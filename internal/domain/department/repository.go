package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByCode(ctx context.Context, code string) (Department, error)
	List(ctx context.Context, page, limit int) ([]Department, int64, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
}

type ManagerRepository interface {
	Create(ctx context.Context, manager Manager) (Manager, error)
	GetByUserID(ctx context.Context, userID string) (Manager, error)
	GetByDepartmentID(ctx context.Context, departmentID string) (Manager, error)
	// Reassign moves the manager row for userID to departmentID, replacing
	// any previous assignment for either side.
	Reassign(ctx context.Context, userID, departmentID string) (Manager, error)
	Delete(ctx context.Context, id string) error
}
