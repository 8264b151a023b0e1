package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.department_id, e.role_id, e.full_name, e.email, e.phone_number,
	e.weekly_hours, e.daily_max_hours, e.shifts_per_week, e.paid_leave_per_year,
	e.is_active, e.created_at, e.updated_at, d.name, r.name
`

const employeeJoin = `
	FROM employees e
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN roles r ON r.id = e.role_id
`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.DepartmentID, &emp.RoleID, &emp.FullName, &emp.Email,
		&emp.PhoneNumber, &emp.WeeklyHours, &emp.DailyMaxHours, &emp.ShiftsPerWeek,
		&emp.PaidLeavePerYear, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.RoleName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, department_id, role_id, full_name, email, phone_number,
			weekly_hours, daily_max_hours, shifts_per_week, paid_leave_per_year, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, user_id, department_id, role_id, full_name, email, phone_number,
			weekly_hours, daily_max_hours, shifts_per_week, paid_leave_per_year,
			is_active, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.DepartmentID, newEmployee.RoleID,
		newEmployee.FullName, newEmployee.Email, newEmployee.PhoneNumber,
		newEmployee.WeeklyHours, newEmployee.DailyMaxHours, newEmployee.ShiftsPerWeek,
		newEmployee.PaidLeavePerYear, newEmployee.IsActive,
	).Scan(
		&created.ID, &created.UserID, &created.DepartmentID, &created.RoleID,
		&created.FullName, &created.Email, &created.PhoneNumber,
		&created.WeeklyHours, &created.DailyMaxHours, &created.ShiftsPerWeek,
		&created.PaidLeavePerYear, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoin + ` WHERE e.id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoin + ` WHERE e.user_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoin + ` WHERE e.email = $1`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.RoleID != "" {
		conditions = append(conditions, fmt.Sprintf("e.role_id = $%d", argIdx))
		args = append(args, filter.RoleID)
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("e.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) ` + employeeJoin + ` WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY e.created_at
		LIMIT $%d OFFSET $%d
	`, employeeColumns, employeeJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// GetActiveByDepartmentID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + employeeJoin + `
		WHERE e.department_id = $1 AND e.is_active = TRUE
		ORDER BY e.created_at
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			role_id = COALESCE($2, role_id),
			full_name = COALESCE($3, full_name),
			phone_number = COALESCE($4, phone_number),
			weekly_hours = COALESCE($5, weekly_hours),
			daily_max_hours = COALESCE($6, daily_max_hours),
			shifts_per_week = COALESCE($7, shifts_per_week),
			paid_leave_per_year = COALESCE($8, paid_leave_per_year),
			is_active = COALESCE($9, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.RoleID, req.FullName, req.PhoneNumber,
		req.WeeklyHours, req.DailyMaxHours, req.ShiftsPerWeek,
		req.PaidLeavePerYear, req.IsActive,
	).Scan(&updatedID)
	if err != nil {
		return employee.Employee{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
