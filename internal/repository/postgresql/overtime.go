package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

const overtimeRequestColumns = `
	orq.id, orq.employee_id, orq.request_date, orq.from_time, orq.to_time,
	orq.request_hours, orq.reason, orq.status, orq.reviewed_by, orq.reviewed_at,
	orq.created_at, orq.updated_at, e.full_name
`

const overtimeRequestJoin = `
	FROM overtime_requests orq
	JOIN employees e ON e.id = orq.employee_id
`

func scanOvertimeRequest(row interface{ Scan(dest ...any) error }) (overtime.OvertimeRequest, error) {
	var req overtime.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.RequestDate, &req.FromTime, &req.ToTime,
		&req.RequestHours, &req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	return req, err
}

// Create implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (employee_id, request_date, from_time, to_time, request_hours, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.RequestDate, req.FromTime, req.ToTime,
		req.RequestHours, req.Reason, string(req.Status),
	).Scan(&createdID)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + overtimeRequestJoin + ` WHERE orq.id = $1`
	return scanOvertimeRequest(q.QueryRow(ctx, query, id))
}

// List implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) List(ctx context.Context, filter overtime.OvertimeRequestFilter) ([]overtime.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("orq.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("orq.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+overtimeRequestJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY orq.created_at DESC
		LIMIT $%d OFFSET $%d
	`, overtimeRequestColumns, overtimeRequestJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// UpdateStatus implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status overtime.RequestStatus, reviewedBy string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	var reviewer *string
	if reviewedBy != "" {
		reviewer = &reviewedBy
	}

	query := `
		UPDATE overtime_requests SET
			status = $2,
			reviewed_by = $3,
			reviewed_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, string(status), reviewer).Scan(&updatedID); err != nil {
		return overtime.OvertimeRequest{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// GetApprovedByEmployeeDate implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepositoryImpl) GetApprovedByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeRequestColumns + overtimeRequestJoin + `
		WHERE orq.employee_id = $1 AND orq.request_date = $2 AND orq.status = 'approved'
		LIMIT 1
	`
	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

type overtimeTrackingRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeTrackingRepository(db *database.DB) overtime.OvertimeTrackingRepository {
	return &overtimeTrackingRepositoryImpl{db: db}
}

const overtimeTrackingColumns = `
	id, employee_id, year, month, allocated_hours, used_hours, remaining_hours,
	created_at, updated_at
`

func scanOvertimeTracking(row interface{ Scan(dest ...any) error }) (overtime.OvertimeTracking, error) {
	var t overtime.OvertimeTracking
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Year, &t.Month, &t.AllocatedHours, &t.UsedHours,
		&t.RemainingHours, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetOrCreate implements overtime.OvertimeTrackingRepository.
func (r *overtimeTrackingRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, year, month int) (overtime.OvertimeTracking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_trackings (employee_id, year, month, allocated_hours, used_hours, remaining_hours)
		VALUES ($1, $2, $3, $4, 0, $4)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET updated_at = overtime_trackings.updated_at
		RETURNING ` + overtimeTrackingColumns

	return scanOvertimeTracking(q.QueryRow(ctx, query, employeeID, year, month, overtime.DefaultAllocatedHours))
}

// AddUsedHours implements overtime.OvertimeTrackingRepository.
func (r *overtimeTrackingRepositoryImpl) AddUsedHours(ctx context.Context, employeeID string, year, month int, hours float64) (overtime.OvertimeTracking, error) {
	if _, err := r.GetOrCreate(ctx, employeeID, year, month); err != nil {
		return overtime.OvertimeTracking{}, err
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_trackings SET
			used_hours = used_hours + $4,
			remaining_hours = allocated_hours - (used_hours + $4),
			updated_at = NOW()
		WHERE employee_id = $1 AND year = $2 AND month = $3
		RETURNING ` + overtimeTrackingColumns

	return scanOvertimeTracking(q.QueryRow(ctx, query, employeeID, year, month, hours))
}
