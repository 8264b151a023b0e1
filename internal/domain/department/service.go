package department

import (
	"context"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/outcome"
)

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context, page, limit int) ([]DepartmentResponse, int64, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error

	// AssignManager returns a confirmation-required outcome when the target
	// user already manages a different department and Force is false.
	AssignManager(ctx context.Context, req AssignManagerRequest) (outcome.Outcome[DepartmentResponse], error)
}
