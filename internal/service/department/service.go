package department

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/outcome"
)

type departmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	managerRepo    department.ManagerRepository
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
}

func NewDepartmentService(
	departmentRepo department.DepartmentRepository,
	managerRepo department.ManagerRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) department.DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		managerRepo:    managerRepo,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
	}
}

// Create implements department.DepartmentService.
func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.departmentRepo.GetByCode(ctx, req.Code); err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentCodeExists
	} else if err != pgx.ErrNoRows && err != department.ErrDepartmentNotFound {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department code: %w", err)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return toDepartmentResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *departmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dept), nil
}

// List implements department.DepartmentService.
func (s *departmentServiceImpl) List(ctx context.Context, page, limit int) ([]department.DepartmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	departments, total, err := s.departmentRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, total, nil
}

// Update implements department.DepartmentService.
func (s *departmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, req.ID); err != nil {
		if err == pgx.ErrNoRows {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, req)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return toDepartmentResponse(updated), nil
}

// Delete implements department.DepartmentService.
func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return department.ErrDepartmentNotFound
		}
		return err
	}

	active, err := s.employeeRepo.GetActiveByDepartmentID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check department employees: %w", err)
	}
	if len(active) > 0 {
		return department.ErrDepartmentNotEmpty
	}

	return s.departmentRepo.Delete(ctx, id)
}

// AssignManager implements department.DepartmentService.
func (s *departmentServiceImpl) AssignManager(ctx context.Context, req department.AssignManagerRequest) (outcome.Outcome[department.DepartmentResponse], error) {
	var zero outcome.Outcome[department.DepartmentResponse]

	if err := req.Validate(); err != nil {
		return zero, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return zero, department.ErrDepartmentNotFound
		}
		return zero, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if err == pgx.ErrNoRows || err == user.ErrUserNotFound {
			return zero, user.ErrUserNotFound
		}
		return zero, fmt.Errorf("failed to get user: %w", err)
	}
	if target.UserType == user.UserTypeEmployee {
		return outcome.ValidationFailed[department.DepartmentResponse]("user must be a manager or admin"), nil
	}

	// A manager runs exactly one department. Moving them away from another
	// one needs an explicit confirmation.
	current, err := s.managerRepo.GetByUserID(ctx, req.UserID)
	switch {
	case err == nil && current.DepartmentID != dept.ID && !req.Force:
		return outcome.ConfirmationRequired[department.DepartmentResponse](
			"user already manages another department; resubmit with force to move them",
			map[string]interface{}{
				"current_department_id": current.DepartmentID,
			},
		), nil
	case err != nil && err != pgx.ErrNoRows && err != department.ErrManagerNotFound:
		return zero, fmt.Errorf("failed to check manager assignment: %w", err)
	}

	if _, err := s.managerRepo.Reassign(ctx, req.UserID, dept.ID); err != nil {
		return zero, fmt.Errorf("failed to assign manager: %w", err)
	}

	updated, err := s.departmentRepo.GetByID(ctx, dept.ID)
	if err != nil {
		return zero, err
	}
	return outcome.Success(toDepartmentResponse(updated)), nil
}

func toDepartmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Code:        dept.Code,
		Description: dept.Description,
		ManagerID:   dept.ManagerID,
		ManagerName: dept.ManagerName,
	}
}
