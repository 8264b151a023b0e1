package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.duration_type, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at, lr.review_notes,
	lr.created_at, lr.updated_at, e.full_name
`

const leaveRequestJoin = `
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
`

func scanLeaveRequest(row interface{ Scan(dest ...any) error }) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.DurationType, &lr.StartDate, &lr.EndDate,
		&lr.Reason, &lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.ReviewNotes,
		&lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, duration_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		req.EmployeeID, string(req.LeaveType), string(req.DurationType),
		req.StartDate, req.EndDate, req.Reason, string(req.Status),
	).Scan(&createdID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoin + ` WHERE lr.id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+leaveRequestJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, leaveRequestJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reviewedBy string, reviewNotes *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var reviewer *string
	if reviewedBy != "" {
		reviewer = &reviewedBy
	}

	query := `
		UPDATE leave_requests SET
			status = $2,
			reviewed_by = $3,
			reviewed_at = NOW(),
			review_notes = COALESCE($4, review_notes),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, string(status), reviewer, reviewNotes).Scan(&updatedID); err != nil {
		return leave.LeaveRequest{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// GetApprovedCovering implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + leaveRequestJoin + `
		WHERE lr.employee_id = $1 AND lr.status = 'approved'
			AND lr.start_date <= $2 AND lr.end_date >= $2
		ORDER BY lr.start_date
	`
	return r.queryRows(ctx, q, query, employeeID, date)
}

// GetApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetApprovedOverlapping(ctx context.Context, departmentID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + leaveRequestJoin + `
		WHERE e.department_id = $1 AND lr.status = 'approved'
			AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date
	`
	return r.queryRows(ctx, q, query, departmentID, start, end)
}

func (r *leaveRequestRepositoryImpl) queryRows(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
