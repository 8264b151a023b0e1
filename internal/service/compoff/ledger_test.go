package compoff

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKey(day("2025-06-15")))
	assert.Equal(t, "2025-12", MonthKey(day("2025-12-31")))
}

func TestMonthExpired(t *testing.T) {
	now := day("2025-07-01")
	assert.True(t, MonthExpired("2025-06", now))
	assert.False(t, MonthExpired("2025-07", now))
	assert.False(t, MonthExpired("2025-08", now))
}

func detail(dt compoff.DetailType, days float64, month string) compoff.CompOffDetail {
	return compoff.CompOffDetail{EmployeeID: "emp-1", Type: dt, Days: days, EarnedMonth: month}
}

func TestAvailableInMonth(t *testing.T) {
	details := []compoff.CompOffDetail{
		detail(compoff.DetailTypeEarned, 2, "2025-06"),
		detail(compoff.DetailTypeUsed, 1, "2025-06"),
		detail(compoff.DetailTypeEarned, 1, "2025-07"),
	}

	assert.Equal(t, 1.0, AvailableInMonth(details, "2025-06"))
	assert.Equal(t, 1.0, AvailableInMonth(details, "2025-07"))
	assert.Equal(t, 0.0, AvailableInMonth(details, "2025-08"))
}

func TestAvailableInMonthNeverNegative(t *testing.T) {
	details := []compoff.CompOffDetail{
		detail(compoff.DetailTypeEarned, 1, "2025-06"),
		detail(compoff.DetailTypeUsed, 1, "2025-06"),
		detail(compoff.DetailTypeExpired, 1, "2025-06"),
	}
	assert.Equal(t, 0.0, AvailableInMonth(details, "2025-06"))
}

func TestLatestLapsedMonthBefore(t *testing.T) {
	details := []compoff.CompOffDetail{
		detail(compoff.DetailTypeEarned, 2, "2025-04"),
		detail(compoff.DetailTypeUsed, 2, "2025-04"),
		detail(compoff.DetailTypeEarned, 1, "2025-05"),
		detail(compoff.DetailTypeEarned, 1, "2025-07"),
	}

	// May still holds a day; April is spent and July is not in the past.
	assert.Equal(t, "2025-05", LatestLapsedMonthBefore(details, "2025-06"))
	assert.Equal(t, "", LatestLapsedMonthBefore(details, "2025-05"))
	assert.Equal(t, "", LatestLapsedMonthBefore(nil, "2025-06"))
}

func TestExpiredBalanceError(t *testing.T) {
	err := expiredBalanceError("2025-05")
	require.Error(t, err)
	assert.ErrorIs(t, err, compoff.ErrBalanceExpired)
	assert.Contains(t, err.Error(), "2025-05-31")
}

func TestBuildMonthlyBreakdown(t *testing.T) {
	details := []compoff.CompOffDetail{
		detail(compoff.DetailTypeEarned, 2, "2025-06"),
		detail(compoff.DetailTypeUsed, 1, "2025-06"),
		detail(compoff.DetailTypeEarned, 1, "2025-07"),
		detail(compoff.DetailTypeExpired, 1, "2025-05"),
		detail(compoff.DetailTypeEarned, 1, "2025-05"),
	}

	breakdown := BuildMonthlyBreakdown(details, day("2025-07-10"))
	require.Len(t, breakdown, 3)

	// Newest month first.
	assert.Equal(t, "2025-07", breakdown[0].Month)
	assert.Equal(t, "2025-06", breakdown[1].Month)
	assert.Equal(t, "2025-05", breakdown[2].Month)

	// Current month keeps its balance.
	july := breakdown[0]
	assert.False(t, july.Expired)
	assert.Equal(t, 1.0, july.AvailableDays)
	assert.Equal(t, "2025-07-31", july.ExpiryDate)

	// Past months are expired regardless of leftover balance.
	june := breakdown[1]
	assert.True(t, june.Expired)
	assert.Equal(t, 2.0, june.EarnedDays)
	assert.Equal(t, 1.0, june.UsedDays)
	assert.Equal(t, 0.0, june.AvailableDays)
	assert.Equal(t, "2025-06-30", june.ExpiryDate)

	may := breakdown[2]
	assert.True(t, may.Expired)
	assert.Equal(t, 0.0, may.AvailableDays)
}
