package role

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
)

type roleServiceImpl struct {
	roleRepo       role.RoleRepository
	departmentRepo department.DepartmentRepository
}

func NewRoleService(roleRepo role.RoleRepository, departmentRepo department.DepartmentRepository) role.RoleService {
	return &roleServiceImpl{
		roleRepo:       roleRepo,
		departmentRepo: departmentRepo,
	}
}

// Create implements role.RoleService.
func (s *roleServiceImpl) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		if err == pgx.ErrNoRows {
			return role.RoleResponse{}, department.ErrDepartmentNotFound
		}
		return role.RoleResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	existing, err := s.roleRepo.GetActiveByDepartmentID(ctx, req.DepartmentID)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to list roles: %w", err)
	}
	for _, r := range existing {
		if r.Name == req.Name {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
	}

	breakMinutes := role.DefaultBreakMinutes
	if req.BreakMinutes != nil {
		breakMinutes = *req.BreakMinutes
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Description:  req.Description,
		BreakMinutes: breakMinutes,
		DayConfig:    req.DayConfig,
		IsActive:     true,
	})
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}
	return toRoleResponse(created), nil
}

// GetByID implements role.RoleService.
func (s *roleServiceImpl) GetByID(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.RoleResponse{}, role.ErrRoleNotFound
		}
		return role.RoleResponse{}, err
	}
	return toRoleResponse(r), nil
}

// List implements role.RoleService.
func (s *roleServiceImpl) List(ctx context.Context, departmentID string, page, limit int) ([]role.RoleResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	roles, total, err := s.roleRepo.List(ctx, departmentID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}
	return responses, total, nil
}

// Update implements role.RoleService.
func (s *roleServiceImpl) Update(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if req.BreakMinutes != nil && (*req.BreakMinutes < 0 || *req.BreakMinutes > 240) {
		return role.RoleResponse{}, fmt.Errorf("break_minutes must be between 0 and 240")
	}

	if _, err := s.roleRepo.GetByID(ctx, req.ID); err != nil {
		if err == pgx.ErrNoRows {
			return role.RoleResponse{}, role.ErrRoleNotFound
		}
		return role.RoleResponse{}, err
	}

	updated, err := s.roleRepo.Update(ctx, req)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to update role: %w", err)
	}
	return toRoleResponse(updated), nil
}

// Delete implements role.RoleService.
func (s *roleServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.roleRepo.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return role.ErrRoleNotFound
		}
		return err
	}
	return s.roleRepo.Delete(ctx, id)
}

func toRoleResponse(r role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:           r.ID,
		DepartmentID: r.DepartmentID,
		Name:         r.Name,
		Description:  r.Description,
		BreakMinutes: r.BreakMinutes,
		DayConfig:    r.DayConfig,
		IsActive:     r.IsActive,
	}
}
