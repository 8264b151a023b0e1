package shift

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

type shiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
	roleRepo  role.RoleRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, roleRepo role.RoleRepository) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo: shiftRepo,
		roleRepo:  roleRepo,
	}
}

// Create implements shift.ShiftService.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftResponse{}, role.ErrRoleNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get role: %w", err)
	}

	minEmp := shift.DefaultMinEmp
	if req.MinEmp != nil {
		minEmp = *req.MinEmp
	}
	maxEmp := shift.DefaultMaxEmp
	if req.MaxEmp != nil {
		maxEmp = *req.MaxEmp
	}
	if minEmp > maxEmp {
		return shift.ShiftResponse{}, shift.ErrInvalidHeadcount
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		RoleID:    req.RoleID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MinEmp:    minEmp,
		MaxEmp:    maxEmp,
		DayConfig: req.DayConfig,
		IsActive:  true,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return toShiftResponse(created), nil
}

// GetByID implements shift.ShiftService.
func (s *shiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, err
	}
	return toShiftResponse(sh), nil
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context, roleID string, page, limit int) ([]shift.ShiftResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	shifts, total, err := s.shiftRepo.List(ctx, roleID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, total, nil
}

// Update implements shift.ShiftService.
func (s *shiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	current, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, err
	}

	minEmp := current.MinEmp
	if req.MinEmp != nil {
		minEmp = *req.MinEmp
	}
	maxEmp := current.MaxEmp
	if req.MaxEmp != nil {
		maxEmp = *req.MaxEmp
	}
	if minEmp > maxEmp {
		return shift.ShiftResponse{}, shift.ErrInvalidHeadcount
	}

	updated, err := s.shiftRepo.Update(ctx, req)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(updated), nil
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		RoleID:    sh.RoleID,
		RoleName:  sh.RoleName,
		Name:      sh.Name,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
		MinEmp:    sh.MinEmp,
		MaxEmp:    sh.MaxEmp,
		DayConfig: sh.DayConfig,
		IsActive:  sh.IsActive,
	}
}
