package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `
	s.id, s.department_id, s.employee_id, s.role_id, s.shift_id, s.date,
	s.start_time, s.end_time, s.status, s.notes, s.created_at, s.updated_at,
	e.full_name, r.name, sh.name
`

const scheduleJoin = `
	FROM schedules s
	JOIN employees e ON e.id = s.employee_id
	LEFT JOIN roles r ON r.id = s.role_id
	LEFT JOIN shifts sh ON sh.id = s.shift_id
`

func scanSchedule(row interface{ Scan(dest ...any) error }) (schedule.Schedule, error) {
	var sched schedule.Schedule
	err := row.Scan(
		&sched.ID, &sched.DepartmentID, &sched.EmployeeID, &sched.RoleID, &sched.ShiftID,
		&sched.Date, &sched.StartTime, &sched.EndTime, &sched.Status, &sched.Notes,
		&sched.CreatedAt, &sched.UpdatedAt, &sched.EmployeeName, &sched.RoleName, &sched.ShiftName,
	)
	return sched, err
}

func statusStrings(statuses []schedule.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (department_id, employee_id, role_id, shift_id, date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		sched.DepartmentID, sched.EmployeeID, sched.RoleID, sched.ShiftID,
		sched.Date, sched.StartTime, sched.EndTime, string(sched.Status), sched.Notes,
	).Scan(&createdID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return r.GetByID(ctx, createdID)
}

// CreateBatch implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) CreateBatch(ctx context.Context, scheds []schedule.Schedule) (int, error) {
	if len(scheds) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(scheds))
	valueArgs := make([]interface{}, 0, len(scheds)*9)
	for i, sched := range scheds {
		base := i * 9
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		valueArgs = append(valueArgs,
			sched.DepartmentID, sched.EmployeeID, sched.RoleID, sched.ShiftID,
			sched.Date, sched.StartTime, sched.EndTime, string(sched.Status), sched.Notes,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO schedules (department_id, employee_id, role_id, shift_id, date, start_time, end_time, status, notes)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	tag, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to batch create schedules: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + scheduleJoin + ` WHERE s.id = $1`
	return scanSchedule(q.QueryRow(ctx, query, id))
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Schedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.status <> 'cancelled'"}
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("s.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}
	if len(filter.Statuses) > 0 {
		conditions = append(conditions, fmt.Sprintf("s.status = ANY($%d)", argIdx))
		args = append(args, statusStrings(filter.Statuses))
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+scheduleJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY s.date, e.full_name
		LIMIT $%d OFFSET $%d
	`, scheduleColumns, scheduleJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, sched)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules SET
			date = COALESCE($2, date),
			start_time = COALESCE($3, start_time),
			end_time = COALESCE($4, end_time),
			status = COALESCE($5, status),
			notes = COALESCE($6, notes),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.ID, req.Date, req.StartTime, req.EndTime, req.Status, req.Notes,
	).Scan(&updatedID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// Delete implements schedule.ScheduleRepository. Rows are cancelled, not
// removed, so the one-row-per-(employee, date) history stays auditable.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE schedules
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status <> 'cancelled'
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// GetByEmployeeDateRange implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByEmployeeDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + scheduleJoin + `
		WHERE s.employee_id = $1 AND s.date BETWEEN $2 AND $3 AND s.status <> 'cancelled'
		ORDER BY s.date
	`
	return r.queryRows(ctx, q, query, employeeID, start, end)
}

// GetByDepartmentDateRange implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByDepartmentDateRange(ctx context.Context, departmentID string, start, end time.Time) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + scheduleJoin + `
		WHERE s.department_id = $1 AND s.date BETWEEN $2 AND $3 AND s.status <> 'cancelled'
		ORDER BY s.employee_id, s.date
	`
	return r.queryRows(ctx, q, query, departmentID, start, end)
}

func (r *scheduleRepositoryImpl) queryRows(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]schedule.Schedule, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// CountByDepartmentDateRange implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) CountByDepartmentDateRange(ctx context.Context, departmentID string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM schedules
		WHERE department_id = $1 AND date BETWEEN $2 AND $3 AND status <> 'cancelled'
	`, departmentID, start, end).Scan(&count)
	return count, err
}

// DeleteGeneratedInRange implements schedule.ScheduleRepository. Dependent
// attendance rows go with the schedule rows; punch and comp-off references
// are detached instead so the delete never trips a foreign key.
func (r *scheduleRepositoryImpl) DeleteGeneratedInRange(ctx context.Context, departmentID string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	deletable := statusStrings(schedule.RegenerateDeletableStatuses)

	// Attendances carry no schedule FK; they are keyed by (employee, date)
	// and cascade by that key.
	cascadeQueries := []string{
		`DELETE FROM attendances a
		 USING schedules s
		 WHERE s.department_id = $1 AND s.date BETWEEN $2 AND $3 AND s.status = ANY($4)
		   AND a.employee_id = s.employee_id AND a.date = s.date`,
		`UPDATE check_in_outs SET schedule_id = NULL
		 WHERE schedule_id IN (
			SELECT id FROM schedules
			WHERE department_id = $1 AND date BETWEEN $2 AND $3 AND status = ANY($4)
		 )`,
		`UPDATE comp_off_requests SET schedule_id = NULL
		 WHERE schedule_id IN (
			SELECT id FROM schedules
			WHERE department_id = $1 AND date BETWEEN $2 AND $3 AND status = ANY($4)
		 )`,
	}
	for _, cascade := range cascadeQueries {
		if _, err := q.Exec(ctx, cascade, departmentID, start, end, deletable); err != nil {
			return 0, fmt.Errorf("failed to cascade schedule references: %w", err)
		}
	}

	tag, err := q.Exec(ctx, `
		DELETE FROM schedules
		WHERE department_id = $1 AND date BETWEEN $2 AND $3 AND status = ANY($4)
	`, departmentID, start, end, deletable)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExistsForEmployeeDate implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ExistsForEmployeeDate(ctx context.Context, employeeID string, date time.Time, statuses []schedule.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	var err error
	if len(statuses) > 0 {
		err = q.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM schedules
				WHERE employee_id = $1 AND date = $2 AND status = ANY($3)
			)
		`, employeeID, date, statusStrings(statuses)).Scan(&exists)
	} else {
		err = q.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM schedules
				WHERE employee_id = $1 AND date = $2 AND status <> 'cancelled'
			)
		`, employeeID, date).Scan(&exists)
	}
	return exists, err
}

// MarkPastSchedules implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) MarkPastSchedules(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules s SET
			status = CASE
				WHEN EXISTS (
					SELECT 1 FROM attendances a
					WHERE a.employee_id = s.employee_id AND a.date = s.date
				) THEN 'completed'
				ELSE 'missed'
			END,
			updated_at = NOW()
		WHERE s.status = 'scheduled' AND s.date <= $1
	`
	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
