package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Deactivate soft-deactivates; employees are never hard-deleted here.
	Deactivate(ctx context.Context, id string) error
}
