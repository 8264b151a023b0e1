package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// GetActiveByDepartmentID returns active employees in catalog
	// (insertion) order; the generator fills shifts from the front of this
	// list.
	GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
