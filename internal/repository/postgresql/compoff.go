package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type compOffRequestRepositoryImpl struct {
	db *database.DB
}

func NewCompOffRequestRepository(db *database.DB) compoff.CompOffRequestRepository {
	return &compOffRequestRepositoryImpl{db: db}
}

const compOffRequestColumns = `
	cr.id, cr.employee_id, cr.comp_off_date, cr.reason, cr.status, cr.schedule_id,
	cr.reviewed_by, cr.reviewed_at, cr.created_at, cr.updated_at, e.full_name
`

const compOffRequestJoin = `
	FROM comp_off_requests cr
	JOIN employees e ON e.id = cr.employee_id
`

func scanCompOffRequest(row interface{ Scan(dest ...any) error }) (compoff.CompOffRequest, error) {
	var cr compoff.CompOffRequest
	err := row.Scan(
		&cr.ID, &cr.EmployeeID, &cr.CompOffDate, &cr.Reason, &cr.Status, &cr.ScheduleID,
		&cr.ReviewedBy, &cr.ReviewedAt, &cr.CreatedAt, &cr.UpdatedAt, &cr.EmployeeName,
	)
	return cr, err
}

// Create implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) Create(ctx context.Context, req compoff.CompOffRequest) (compoff.CompOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_off_requests (employee_id, comp_off_date, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var createdID string
	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.CompOffDate, req.Reason, string(req.Status),
	).Scan(&createdID)
	if err != nil {
		return compoff.CompOffRequest{}, err
	}
	return r.GetByID(ctx, createdID)
}

// GetByID implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) GetByID(ctx context.Context, id string) (compoff.CompOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + compOffRequestColumns + compOffRequestJoin + ` WHERE cr.id = $1`
	return scanCompOffRequest(q.QueryRow(ctx, query, id))
}

// List implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) List(ctx context.Context, filter compoff.CompOffRequestFilter) ([]compoff.CompOffRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("cr.employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("cr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) `+compOffRequestJoin+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s %s WHERE %s
		ORDER BY cr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, compOffRequestColumns, compOffRequestJoin, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []compoff.CompOffRequest
	for rows.Next() {
		cr, err := scanCompOffRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, cr)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// UpdateStatus implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status compoff.RequestStatus, reviewedBy string, scheduleID *string) (compoff.CompOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	var reviewer *string
	if reviewedBy != "" {
		reviewer = &reviewedBy
	}

	query := `
		UPDATE comp_off_requests SET
			status = $2,
			reviewed_by = $3,
			reviewed_at = NOW(),
			schedule_id = COALESCE($4, schedule_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, string(status), reviewer, scheduleID).Scan(&updatedID); err != nil {
		return compoff.CompOffRequest{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// GetApprovedByEmployeeDate implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) GetApprovedByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*compoff.CompOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compOffRequestColumns + compOffRequestJoin + `
		WHERE cr.employee_id = $1 AND cr.comp_off_date = $2 AND cr.status = 'approved'
		LIMIT 1
	`
	cr, err := scanCompOffRequest(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &cr, nil
}

// GetApprovedInRange implements compoff.CompOffRequestRepository.
func (r *compOffRequestRepositoryImpl) GetApprovedInRange(ctx context.Context, departmentID string, start, end time.Time) ([]compoff.CompOffRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compOffRequestColumns + compOffRequestJoin + `
		WHERE e.department_id = $1 AND cr.status = 'approved'
			AND cr.comp_off_date BETWEEN $2 AND $3
		ORDER BY cr.comp_off_date
	`

	rows, err := q.Query(ctx, query, departmentID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []compoff.CompOffRequest
	for rows.Next() {
		cr, err := scanCompOffRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, cr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

type compOffTrackingRepositoryImpl struct {
	db *database.DB
}

func NewCompOffTrackingRepository(db *database.DB) compoff.CompOffTrackingRepository {
	return &compOffTrackingRepositoryImpl{db: db}
}

const compOffTrackingColumns = `
	id, employee_id, earned_days, used_days, expired_days, created_at, updated_at
`

func scanCompOffTracking(row interface{ Scan(dest ...any) error }) (compoff.CompOffTracking, error) {
	var t compoff.CompOffTracking
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.EarnedDays, &t.UsedDays, &t.ExpiredDays,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetOrCreateByEmployeeID implements compoff.CompOffTrackingRepository.
func (r *compOffTrackingRepositoryImpl) GetOrCreateByEmployeeID(ctx context.Context, employeeID string) (compoff.CompOffTracking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_off_trackings (employee_id, earned_days, used_days, expired_days)
		VALUES ($1, 0, 0, 0)
		ON CONFLICT (employee_id) DO UPDATE SET updated_at = comp_off_trackings.updated_at
		RETURNING ` + compOffTrackingColumns

	return scanCompOffTracking(q.QueryRow(ctx, query, employeeID))
}

// GetByEmployeeID implements compoff.CompOffTrackingRepository.
func (r *compOffTrackingRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (compoff.CompOffTracking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + compOffTrackingColumns + ` FROM comp_off_trackings WHERE employee_id = $1`
	t, err := scanCompOffTracking(q.QueryRow(ctx, query, employeeID))
	if err == pgx.ErrNoRows {
		return compoff.CompOffTracking{}, compoff.ErrTrackingNotFound
	}
	return t, err
}

// ListAll implements compoff.CompOffTrackingRepository.
func (r *compOffTrackingRepositoryImpl) ListAll(ctx context.Context) ([]compoff.CompOffTracking, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+compOffTrackingColumns+` FROM comp_off_trackings ORDER BY employee_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackings []compoff.CompOffTracking
	for rows.Next() {
		t, err := scanCompOffTracking(rows)
		if err != nil {
			return nil, err
		}
		trackings = append(trackings, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return trackings, nil
}

// ApplyDelta implements compoff.CompOffTrackingRepository.
func (r *compOffTrackingRepositoryImpl) ApplyDelta(ctx context.Context, employeeID string, earned, used, expired float64) (compoff.CompOffTracking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_off_trackings (employee_id, earned_days, used_days, expired_days)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE SET
			earned_days = comp_off_trackings.earned_days + EXCLUDED.earned_days,
			used_days = comp_off_trackings.used_days + EXCLUDED.used_days,
			expired_days = comp_off_trackings.expired_days + EXCLUDED.expired_days,
			updated_at = NOW()
		RETURNING ` + compOffTrackingColumns

	return scanCompOffTracking(q.QueryRow(ctx, query, employeeID, earned, used, expired))
}

type compOffDetailRepositoryImpl struct {
	db *database.DB
}

func NewCompOffDetailRepository(db *database.DB) compoff.CompOffDetailRepository {
	return &compOffDetailRepositoryImpl{db: db}
}

const compOffDetailColumns = `
	id, employee_id, type, days, earned_month, notes, created_at
`

func scanCompOffDetail(row interface{ Scan(dest ...any) error }) (compoff.CompOffDetail, error) {
	var d compoff.CompOffDetail
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.Days, &d.EarnedMonth, &d.Notes, &d.CreatedAt,
	)
	return d, err
}

// Create implements compoff.CompOffDetailRepository.
func (r *compOffDetailRepositoryImpl) Create(ctx context.Context, detail compoff.CompOffDetail) (compoff.CompOffDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_off_details (employee_id, type, days, earned_month, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + compOffDetailColumns

	return scanCompOffDetail(q.QueryRow(ctx, query,
		detail.EmployeeID, string(detail.Type), detail.Days, detail.EarnedMonth, detail.Notes,
	))
}

// GetByEmployeeID implements compoff.CompOffDetailRepository.
func (r *compOffDetailRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]compoff.CompOffDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compOffDetailColumns + `
		FROM comp_off_details
		WHERE employee_id = $1
		ORDER BY created_at
	`
	return r.queryRows(ctx, q, query, employeeID)
}

// GetByEmployeeMonth implements compoff.CompOffDetailRepository.
func (r *compOffDetailRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID, earnedMonth string) ([]compoff.CompOffDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compOffDetailColumns + `
		FROM comp_off_details
		WHERE employee_id = $1 AND earned_month = $2
		ORDER BY created_at
	`
	return r.queryRows(ctx, q, query, employeeID, earnedMonth)
}

func (r *compOffDetailRepositoryImpl) queryRows(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]compoff.CompOffDetail, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []compoff.CompOffDetail
	for rows.Next() {
		d, err := scanCompOffDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
