package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
)

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	if req.RoleID != nil {
		r, err := s.roleRepo.GetByID(ctx, *req.RoleID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return employee.EmployeeResponse{}, role.ErrRoleNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get role: %w", err)
		}
		if r.DepartmentID != dept.ID {
			return employee.EmployeeResponse{}, role.ErrRoleNotFound
		}
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if err != pgx.ErrNoRows && err != employee.ErrEmployeeNotFound {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	newEmployee := employee.Employee{
		DepartmentID:     dept.ID,
		RoleID:           req.RoleID,
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		WeeklyHours:      employee.DefaultWeeklyHours,
		DailyMaxHours:    employee.DefaultDailyMaxHours,
		ShiftsPerWeek:    employee.DefaultShiftsPerWeek,
		PaidLeavePerYear: employee.DefaultPaidLeavePerYear,
		IsActive:         true,
	}
	if req.WeeklyHours != nil {
		newEmployee.WeeklyHours = *req.WeeklyHours
	}
	if req.DailyMaxHours != nil {
		newEmployee.DailyMaxHours = *req.DailyMaxHours
	}
	if req.ShiftsPerWeek != nil {
		newEmployee.ShiftsPerWeek = *req.ShiftsPerWeek
	}
	if req.PaidLeavePerYear != nil {
		newEmployee.PaidLeavePerYear = *req.PaidLeavePerYear
	}
	if newEmployee.DailyMaxHours > newEmployee.WeeklyHours {
		return employee.EmployeeResponse{}, employee.ErrInvalidHourCaps
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	if req.RoleID != nil {
		r, err := s.roleRepo.GetByID(ctx, *req.RoleID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return employee.EmployeeResponse{}, role.ErrRoleNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get role: %w", err)
		}
		if r.DepartmentID != current.DepartmentID {
			return employee.EmployeeResponse{}, role.ErrRoleNotFound
		}
	}

	weekly := current.WeeklyHours
	if req.WeeklyHours != nil {
		weekly = *req.WeeklyHours
	}
	daily := current.DailyMaxHours
	if req.DailyMaxHours != nil {
		daily = *req.DailyMaxHours
	}
	if daily > weekly {
		return employee.EmployeeResponse{}, employee.ErrInvalidHourCaps
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *employeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}
	return s.employeeRepo.Deactivate(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		DepartmentID:     emp.DepartmentID,
		DepartmentName:   emp.DepartmentName,
		RoleID:           emp.RoleID,
		RoleName:         emp.RoleName,
		FullName:         emp.FullName,
		Email:            emp.Email,
		PhoneNumber:      emp.PhoneNumber,
		WeeklyHours:      emp.WeeklyHours,
		DailyMaxHours:    emp.DailyMaxHours,
		ShiftsPerWeek:    emp.ShiftsPerWeek,
		PaidLeavePerYear: emp.PaidLeavePerYear,
		IsActive:         emp.IsActive,
	}
}
