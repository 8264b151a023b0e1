package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.role_id, s.name, s.start_time, s.end_time, s.min_emp, s.max_emp,
	s.day_config, s.is_active, s.created_at, s.updated_at, r.name
`

const shiftJoin = `
	FROM shifts s
	JOIN roles r ON r.id = s.role_id
`

func scanShift(row interface{ Scan(dest ...any) error }) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.RoleID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.MinEmp,
		&sh.MaxEmp, &sh.DayConfig, &sh.IsActive, &sh.CreatedAt, &sh.UpdatedAt,
		&sh.RoleName,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (role_id, name, start_time, end_time, min_emp, max_emp, day_config, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		sh.RoleID, sh.Name, sh.StartTime, sh.EndTime,
		sh.MinEmp, sh.MaxEmp, sh.DayConfig, sh.IsActive,
	).Scan(&createdID)
	if err != nil {
		return shift.Shift{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + shiftJoin + ` WHERE s.id = $1`
	return scanShift(q.QueryRow(ctx, query, id))
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, roleID string, page, limit int) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if roleID != "" {
		conditions = append(conditions, fmt.Sprintf("s.role_id = $%d", argIdx))
		args = append(args, roleID)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+shiftJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY s.created_at
		LIMIT $%d OFFSET $%d
	`, shiftColumns, shiftJoin, where, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, 0, err
		}
		shifts = append(shifts, sh)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return shifts, total, nil
}

// GetActiveByDepartmentID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftJoin + `
		WHERE r.department_id = $1 AND s.is_active = TRUE AND r.is_active = TRUE
		ORDER BY s.created_at
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			name = COALESCE($2, name),
			start_time = COALESCE($3, start_time),
			end_time = COALESCE($4, end_time),
			min_emp = COALESCE($5, min_emp),
			max_emp = COALESCE($6, max_emp),
			day_config = COALESCE($7, day_config),
			is_active = COALESCE($8, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var dayConfig interface{}
	if len(req.DayConfig) > 0 {
		dayConfig = req.DayConfig
	}

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.Name, req.StartTime, req.EndTime,
		req.MinEmp, req.MaxEmp, dayConfig, req.IsActive,
	).Scan(&updatedID)
	if err != nil {
		return shift.Shift{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// Delete implements shift.ShiftRepository. Soft delete, matching roles.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shifts
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
