package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeOracle is a fixed holiday table for deterministic tests.
type fakeOracle map[string]string

func (f fakeOracle) IsHoliday(d time.Time) bool {
	_, ok := f[d.Format("2006-01-02")]
	return ok
}

func (f fakeOracle) HolidayName(d time.Time) (string, bool) {
	name, ok := f[d.Format("2006-01-02")]
	return name, ok
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, time.June, 2), date(2025, time.June, 2)},  // Monday
		{date(2025, time.June, 4), date(2025, time.June, 2)},  // Wednesday
		{date(2025, time.June, 8), date(2025, time.June, 2)},  // Sunday
		{date(2025, time.June, 9), date(2025, time.June, 9)},  // next Monday
		{date(2025, time.June, 7), date(2025, time.June, 2)},  // Saturday
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WeekStart(c.in), "WeekStart(%s)", c.in.Format("2006-01-02"))
	}
}

func TestRequiredShiftsForWeek(t *testing.T) {
	weekStart := date(2025, time.June, 2) // Mon

	cases := []struct {
		name   string
		oracle fakeOracle
		want   int
	}{
		{"no holidays", fakeOracle{}, 5},
		{"one weekday holiday", fakeOracle{"2025-06-04": "Midweek Day"}, 4},
		{"two weekday holidays floor at 4", fakeOracle{
			"2025-06-04": "Day One",
			"2025-06-05": "Day Two",
		}, 4},
		{"weekend holiday does not reduce", fakeOracle{"2025-06-07": "Saturday Day"}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RequiredShiftsForWeek(c.oracle, weekStart))
		})
	}
}

func TestRequiredShiftsForWeek_Japan(t *testing.T) {
	jp := NewJapan()

	// Week of Feb 10, 2025 contains National Foundation Day (Tue Feb 11).
	assert.Equal(t, 4, RequiredShiftsForWeek(jp, date(2025, time.February, 10)))

	// Golden Week Mon May 5 + substitute Tue May 6, 2025: still floored at 4.
	assert.Equal(t, 4, RequiredShiftsForWeek(jp, date(2025, time.May, 5)))

	// A plain week.
	assert.Equal(t, 5, RequiredShiftsForWeek(jp, date(2025, time.June, 2)))
}

func TestWeekInfo(t *testing.T) {
	oracle := fakeOracle{"2025-06-04": "Midweek Day", "2025-06-08": "Sunday Day"}
	info := WeekInfo(oracle, date(2025, time.June, 2))

	assert.Len(t, info.Days, 7)
	assert.Equal(t, 2, info.WeekendCount)
	assert.Equal(t, 2, info.HolidayCount)
	assert.Equal(t, 1, info.WeekdayHolidayCount)
	assert.Equal(t, 4, info.RequiredShifts)

	wed := info.Days[2]
	assert.True(t, wed.IsHoliday)
	assert.True(t, wed.IsNonWorking)
	if assert.NotNil(t, wed.HolidayName) {
		assert.Equal(t, "Midweek Day", *wed.HolidayName)
	}

	sun := info.Days[6]
	assert.True(t, sun.IsWeekend)
	assert.True(t, sun.IsHoliday)
}

func TestNonWorkingDaysInRange(t *testing.T) {
	oracle := fakeOracle{"2025-06-04": "Midweek Day"}
	days := NonWorkingDaysInRange(oracle, date(2025, time.June, 2), date(2025, time.June, 8))

	assert.Equal(t, map[string]string{
		"2025-06-04": "Midweek Day",
		"2025-06-07": "Saturday",
		"2025-06-08": "Sunday",
	}, days)
}
