package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `
	id, department_id, name, description, break_minutes, day_config,
	is_active, created_at, updated_at
`

func scanRole(row interface{ Scan(dest ...any) error }) (role.Role, error) {
	var ro role.Role
	err := row.Scan(
		&ro.ID, &ro.DepartmentID, &ro.Name, &ro.Description, &ro.BreakMinutes,
		&ro.DayConfig, &ro.IsActive, &ro.CreatedAt, &ro.UpdatedAt,
	)
	return ro, err
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (department_id, name, description, break_minutes, day_config, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + roleColumns

	created, err := scanRole(q.QueryRow(ctx, query,
		ro.DepartmentID, ro.Name, ro.Description, ro.BreakMinutes, ro.DayConfig, ro.IsActive,
	))
	if err != nil {
		return role.Role{}, err
	}
	return created, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	return scanRole(q.QueryRow(ctx, query, id))
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context, departmentID string, page, limit int) ([]role.Role, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if departmentID != "" {
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, departmentID)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM roles WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM roles WHERE %s
		ORDER BY created_at
		LIMIT $%d OFFSET $%d
	`, roleColumns, where, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, 0, err
		}
		roles = append(roles, ro)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

// GetActiveByDepartmentID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + roleColumns + `
		FROM roles
		WHERE department_id = $1 AND is_active = TRUE
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, ro)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, req role.UpdateRoleRequest) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			break_minutes = COALESCE($4, break_minutes),
			day_config = COALESCE($5, day_config),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + roleColumns

	var dayConfig interface{}
	if len(req.DayConfig) > 0 {
		dayConfig = req.DayConfig
	}

	updated, err := scanRole(q.QueryRow(ctx, query,
		req.ID, req.Name, req.Description, req.BreakMinutes, dayConfig, req.IsActive,
	))
	if err != nil {
		return role.Role{}, err
	}
	return updated, nil
}

// Delete implements role.RoleRepository. Roles are soft-deleted to keep
// historical schedule rows resolvable.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE roles
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}
