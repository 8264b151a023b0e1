package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, roleID string, page, limit int) ([]Shift, int64, error)
	// GetActiveByDepartmentID returns active shifts of the department's
	// active roles in catalog order.
	GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) (Shift, error)
	Delete(ctx context.Context, id string) error
}
