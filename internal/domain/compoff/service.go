package compoff

import (
	"context"
	"time"
)

type CompOffService interface {
	// CreateRequest rejects dates that already carry a scheduled or
	// completed shift.
	CreateRequest(ctx context.Context, req CreateCompOffRequestRequest) (CompOffRequestResponse, error)
	GetRequest(ctx context.Context, id string) (CompOffRequestResponse, error)
	ListRequests(ctx context.Context, filter CompOffRequestFilter) ([]CompOffRequestResponse, int64, error)

	// Approve earns one day: creates the comp_off_earned schedule row with
	// the employee's typical shift times for that weekday, bumps the
	// tracking totals and appends the earned detail, all in one
	// transaction.
	Approve(ctx context.Context, id string) (CompOffRequestResponse, error)
	Reject(ctx context.Context, id string) (CompOffRequestResponse, error)

	GetTracking(ctx context.Context, employeeID string) (TrackingResponse, error)
	MonthlyBreakdown(ctx context.Context, employeeID string) ([]MonthBreakdown, error)
	// ValidateAvailable checks the balance usable on the given date under
	// the monthly-expiry rule.
	ValidateAvailable(ctx context.Context, employeeID string, date time.Time) (AvailabilityResult, error)

	// Consume records use of earned days (called by leave approval for
	// comp_off leave). Fails with ErrBalanceExpired when only prior-month
	// balance remains for the dates.
	Consume(ctx context.Context, employeeID string, dates []time.Time) error

	// ExpireOutdated expires prior-month balances for every employee;
	// returns the number of expired days. Run from the month-boundary job.
	ExpireOutdated(ctx context.Context, now time.Time) (float64, error)
}
