package compoff

import (
	"fmt"
	"sort"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
)

const monthKeyLayout = "2006-01"

// MonthKey tags a date with its earning month.
func MonthKey(date time.Time) string {
	return date.Format(monthKeyLayout)
}

// MonthExpired reports whether balance earned in monthKey is already written
// off at now: everything before the current month is.
func MonthExpired(monthKey string, now time.Time) bool {
	return monthKey < MonthKey(now)
}

// monthEndDate returns the last day of the month as "YYYY-MM-DD".
func monthEndDate(monthKey string) string {
	start, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 1, -1).Format("2006-01-02")
}

// LatestLapsedMonthBefore returns the most recent earning month strictly
// before monthKey that still holds unclaimed balance, "" when none does.
func LatestLapsedMonthBefore(details []compoff.CompOffDetail, monthKey string) string {
	leftovers := make(map[string]float64)
	for _, d := range details {
		if d.EarnedMonth >= monthKey {
			continue
		}
		switch d.Type {
		case compoff.DetailTypeEarned:
			leftovers[d.EarnedMonth] += d.Days
		case compoff.DetailTypeUsed, compoff.DetailTypeExpired:
			leftovers[d.EarnedMonth] -= d.Days
		}
	}

	latest := ""
	for m, days := range leftovers {
		if days > 0 && m > latest {
			latest = m
		}
	}
	return latest
}

// expiredBalanceError wraps ErrBalanceExpired with the day the balance
// lapsed, so rejections name the boundary instead of just the rule.
func expiredBalanceError(monthKey string) error {
	return fmt.Errorf("%w (balance lapsed on %s)", compoff.ErrBalanceExpired, monthEndDate(monthKey))
}

// AvailableInMonth folds the detail log down to the usable balance for one
// earning month.
func AvailableInMonth(details []compoff.CompOffDetail, monthKey string) float64 {
	available := 0.0
	for _, d := range details {
		if d.EarnedMonth != monthKey {
			continue
		}
		switch d.Type {
		case compoff.DetailTypeEarned:
			available += d.Days
		case compoff.DetailTypeUsed, compoff.DetailTypeExpired:
			available -= d.Days
		}
	}
	if available < 0 {
		return 0
	}
	return available
}

// BuildMonthlyBreakdown groups the detail log by earning month, newest
// first, marking months whose balance has lapsed.
func BuildMonthlyBreakdown(details []compoff.CompOffDetail, now time.Time) []compoff.MonthBreakdown {
	type totals struct {
		earned, used, expired float64
	}
	byMonth := make(map[string]*totals)
	for _, d := range details {
		t := byMonth[d.EarnedMonth]
		if t == nil {
			t = &totals{}
			byMonth[d.EarnedMonth] = t
		}
		switch d.Type {
		case compoff.DetailTypeEarned:
			t.earned += d.Days
		case compoff.DetailTypeUsed:
			t.used += d.Days
		case compoff.DetailTypeExpired:
			t.expired += d.Days
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	breakdown := make([]compoff.MonthBreakdown, 0, len(months))
	for _, m := range months {
		t := byMonth[m]
		available := t.earned - t.used - t.expired
		if available < 0 {
			available = 0
		}
		expired := MonthExpired(m, now)
		if expired {
			available = 0
		}
		breakdown = append(breakdown, compoff.MonthBreakdown{
			Month:         m,
			EarnedDays:    t.earned,
			UsedDays:      t.used,
			ExpiredDays:   t.expired,
			AvailableDays: available,
			ExpiryDate:    monthEndDate(m),
			Expired:       expired,
		})
	}
	return breakdown
}
