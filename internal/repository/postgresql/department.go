package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/department"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `
	d.id, d.name, d.code, d.description, d.created_at, d.updated_at,
	m.user_id, u.full_name
`

const departmentJoin = `
	FROM departments d
	LEFT JOIN managers m ON m.department_id = d.id
	LEFT JOIN users u ON u.id = m.user_id
`

func scanDepartment(row interface{ Scan(dest ...any) error }) (department.Department, error) {
	var dept department.Department
	err := row.Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.Description,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.ManagerID, &dept.ManagerName,
	)
	return dept, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, code, description, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, dept.Name, dept.Code, dept.Description).Scan(
		&created.ID, &created.Name, &created.Code, &created.Description,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + departmentJoin + ` WHERE d.id = $1`
	return scanDepartment(q.QueryRow(ctx, query, id))
}

// GetByCode implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByCode(ctx context.Context, code string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + departmentJoin + ` WHERE d.code = $1`
	return scanDepartment(q.QueryRow(ctx, query, code))
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, page, limit int) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + departmentColumns + departmentJoin + `
		ORDER BY d.name
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, req.ID, req.Name, req.Description).Scan(&updatedID); err != nil {
		return department.Department{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

type managerRepositoryImpl struct {
	db *database.DB
}

func NewManagerRepository(db *database.DB) department.ManagerRepository {
	return &managerRepositoryImpl{db: db}
}

const managerColumns = `
	m.id, m.user_id, m.department_id, m.created_at, m.updated_at, u.full_name, u.email
`

func scanManager(row interface{ Scan(dest ...any) error }) (department.Manager, error) {
	var m department.Manager
	err := row.Scan(
		&m.ID, &m.UserID, &m.DepartmentID, &m.CreatedAt, &m.UpdatedAt,
		&m.FullName, &m.Email,
	)
	return m, err
}

// Create implements department.ManagerRepository.
func (r *managerRepositoryImpl) Create(ctx context.Context, manager department.Manager) (department.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO managers (user_id, department_id)
		VALUES ($1, $2)
		RETURNING id, user_id, department_id, created_at, updated_at
	`

	var created department.Manager
	err := q.QueryRow(ctx, query, manager.UserID, manager.DepartmentID).Scan(
		&created.ID, &created.UserID, &created.DepartmentID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return department.Manager{}, err
	}
	return created, nil
}

// GetByUserID implements department.ManagerRepository.
func (r *managerRepositoryImpl) GetByUserID(ctx context.Context, userID string) (department.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + managerColumns + `
		FROM managers m
		JOIN users u ON u.id = m.user_id
		WHERE m.user_id = $1
	`
	m, err := scanManager(q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return department.Manager{}, department.ErrManagerNotFound
	}
	return m, err
}

// GetByDepartmentID implements department.ManagerRepository.
func (r *managerRepositoryImpl) GetByDepartmentID(ctx context.Context, departmentID string) (department.Manager, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + managerColumns + `
		FROM managers m
		JOIN users u ON u.id = m.user_id
		WHERE m.department_id = $1
	`
	m, err := scanManager(q.QueryRow(ctx, query, departmentID))
	if err == pgx.ErrNoRows {
		return department.Manager{}, department.ErrManagerNotFound
	}
	return m, err
}

// Reassign implements department.ManagerRepository. Any assignment held by
// the user or sitting on the department is replaced atomically.
func (r *managerRepositoryImpl) Reassign(ctx context.Context, userID, departmentID string) (department.Manager, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM managers WHERE user_id = $1 OR department_id = $2`, userID, departmentID); err != nil {
		return department.Manager{}, err
	}

	query := `
		INSERT INTO managers (user_id, department_id)
		VALUES ($1, $2)
		RETURNING id, user_id, department_id, created_at, updated_at
	`
	var m department.Manager
	err := q.QueryRow(ctx, query, userID, departmentID).Scan(
		&m.ID, &m.UserID, &m.DepartmentID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return department.Manager{}, err
	}
	return m, nil
}

// Delete implements department.ManagerRepository.
func (r *managerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrManagerNotFound
	}
	return nil
}
