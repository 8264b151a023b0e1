package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJapanFixedHolidays(t *testing.T) {
	jp := NewJapan()

	cases := []struct {
		date time.Time
		name string
	}{
		{date(2025, time.January, 1), "New Year's Day"},
		{date(2025, time.February, 11), "National Foundation Day"},
		{date(2025, time.April, 29), "Showa Day"},
		{date(2025, time.May, 3), "Constitution Memorial Day"},
		{date(2025, time.May, 4), "Greenery Day"},
		{date(2025, time.May, 5), "Children's Day"},
		{date(2025, time.August, 11), "Mountain Day"},
		{date(2025, time.November, 3), "Culture Day"},
		{date(2025, time.November, 23), "Labor Thanksgiving Day"},
	}
	for _, c := range cases {
		name, ok := jp.HolidayName(c.date)
		require.True(t, ok, "expected %s to be a holiday", c.date.Format("2006-01-02"))
		assert.Equal(t, c.name, name)
	}

	assert.False(t, jp.IsHoliday(date(2025, time.June, 10)))
	assert.False(t, jp.IsHoliday(date(2025, time.March, 3)))
}

func TestJapanHappyMondayHolidays(t *testing.T) {
	jp := NewJapan()

	// 2025: Coming of Age Day Jan 13, Marine Day Jul 21,
	// Respect for the Aged Day Sep 15, Sports Day Oct 13.
	assert.True(t, jp.IsHoliday(date(2025, time.January, 13)))
	assert.True(t, jp.IsHoliday(date(2025, time.July, 21)))
	assert.True(t, jp.IsHoliday(date(2025, time.September, 15)))
	assert.True(t, jp.IsHoliday(date(2025, time.October, 13)))

	assert.False(t, jp.IsHoliday(date(2025, time.January, 6)))
	assert.False(t, jp.IsHoliday(date(2025, time.October, 6)))
}

func TestJapanEquinoxes(t *testing.T) {
	jp := NewJapan()

	name, ok := jp.HolidayName(date(2025, time.March, 20))
	require.True(t, ok)
	assert.Equal(t, "Vernal Equinox Day", name)

	name, ok = jp.HolidayName(date(2025, time.September, 23))
	require.True(t, ok)
	assert.Equal(t, "Autumnal Equinox Day", name)

	assert.True(t, jp.IsHoliday(date(2026, time.March, 20)))
	assert.True(t, jp.IsHoliday(date(2026, time.September, 23)))
}

func TestJapanSubstituteHoliday(t *testing.T) {
	jp := NewJapan()

	// Feb 23, 2025 falls on a Sunday, so Monday Feb 24 is a day off.
	name, ok := jp.HolidayName(date(2025, time.February, 24))
	require.True(t, ok)
	assert.Equal(t, "Substitute Holiday", name)

	// May 4, 2025 (Greenery Day) is a Sunday; May 5 is already Children's
	// Day, so the substitute lands on May 6.
	name, ok = jp.HolidayName(date(2025, time.May, 6))
	require.True(t, ok)
	assert.Equal(t, "Substitute Holiday", name)
}

func TestJapanCitizensHoliday(t *testing.T) {
	jp := NewJapan()

	// Silver Week 2026: Sep 21 Respect for the Aged Day, Sep 23 Autumnal
	// Equinox Day, so Tuesday Sep 22 becomes a Citizens' Holiday.
	name, ok := jp.HolidayName(date(2026, time.September, 22))
	require.True(t, ok)
	assert.Equal(t, "Citizens' Holiday", name)
}
