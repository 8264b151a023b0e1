package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/attendance"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type checkInOutRepositoryImpl struct {
	db *database.DB
}

func NewCheckInOutRepository(db *database.DB) attendance.CheckInOutRepository {
	return &checkInOutRepositoryImpl{db: db}
}

const checkInOutColumns = `
	id, employee_id, schedule_id, check_in_time, check_out_time, status,
	created_at, updated_at
`

func scanCheckInOut(row interface{ Scan(dest ...any) error }) (attendance.CheckInOut, error) {
	var rec attendance.CheckInOut
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.ScheduleID, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.CheckInOutRepository.
func (r *checkInOutRepositoryImpl) Create(ctx context.Context, rec attendance.CheckInOut) (attendance.CheckInOut, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_in_outs (employee_id, schedule_id, check_in_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + checkInOutColumns

	return scanCheckInOut(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.ScheduleID, rec.CheckInTime, string(rec.Status),
	))
}

// GetOpenByEmployee implements attendance.CheckInOutRepository.
func (r *checkInOutRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (*attendance.CheckInOut, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInOutColumns + `
		FROM check_in_outs
		WHERE employee_id = $1 AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`
	rec, err := scanCheckInOut(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetStaleOpen implements attendance.CheckInOutRepository.
func (r *checkInOutRepositoryImpl) GetStaleOpen(ctx context.Context, cutoff time.Time) ([]attendance.CheckInOut, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkInOutColumns + `
		FROM check_in_outs
		WHERE check_out_time IS NULL AND check_in_time < $1
		ORDER BY check_in_time
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.CheckInOut
	for rows.Next() {
		rec, err := scanCheckInOut(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}

// SetCheckOut implements attendance.CheckInOutRepository.
func (r *checkInOutRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.CheckInOut, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE check_in_outs SET
			check_out_time = $2,
			updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
		RETURNING ` + checkInOutColumns

	rec, err := scanCheckInOut(q.QueryRow(ctx, query, id, checkOut))
	if err == pgx.ErrNoRows {
		return attendance.CheckInOut{}, attendance.ErrAlreadyCheckedOut
	}
	return rec, err
}

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.in_time, a.out_time, a.worked_hours,
	a.break_minutes, a.overtime_hours, a.status, a.created_at, a.updated_at,
	e.full_name
`

const attendanceJoin = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row interface{ Scan(dest ...any) error }) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.InTime, &att.OutTime, &att.WorkedHours,
		&att.BreakMinutes, &att.OvertimeHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, in_time, out_time, worked_hours, break_minutes, overtime_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.InTime, att.OutTime, att.WorkedHours,
		att.BreakMinutes, att.OvertimeHours, att.Status,
	).Scan(&createdID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoin + ` WHERE a.id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetByEmployeeDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoin + ` WHERE a.employee_id = $1 AND a.date = $2`
	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+attendanceJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY a.date DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			in_time = $2,
			out_time = $3,
			worked_hours = $4,
			break_minutes = $5,
			overtime_hours = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.ID, att.InTime, att.OutTime, att.WorkedHours,
		att.BreakMinutes, att.OvertimeHours, att.Status,
	).Scan(&updatedID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// ExistsForDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND date = $2)
	`, employeeID, date).Scan(&exists)
	return exists, err
}
