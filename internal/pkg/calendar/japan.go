package calendar

import (
	"sync"
	"time"
)

// Japan computes Japanese national holidays. The holiday set follows the
// statute as of 2020 (Emperor's Birthday on Feb 23, Sports Day naming,
// Mountain Day); the 2020/2021 Olympic one-off date moves are not applied.
// Equinox days use the standard approximation, valid for 2000-2099.
type Japan struct {
	mu    sync.Mutex
	years map[int]map[string]string // year -> "01-02" -> holiday name
}

// NewJapan returns a Japan holiday oracle.
func NewJapan() *Japan {
	return &Japan{years: make(map[int]map[string]string)}
}

// IsHoliday implements Oracle.
func (j *Japan) IsHoliday(date time.Time) bool {
	_, ok := j.HolidayName(date)
	return ok
}

// HolidayName implements Oracle.
func (j *Japan) HolidayName(date time.Time) (string, bool) {
	name, ok := j.yearTable(date.Year())[date.Format("01-02")]
	return name, ok
}

func (j *Japan) yearTable(year int) map[string]string {
	j.mu.Lock()
	defer j.mu.Unlock()
	if table, ok := j.years[year]; ok {
		return table
	}
	table := buildJapanYear(year)
	j.years[year] = table
	return table
}

func buildJapanYear(year int) map[string]string {
	type holiday struct {
		date time.Time
		name string
	}

	fixed := func(month time.Month, day int, name string) holiday {
		return holiday{time.Date(year, month, day, 0, 0, 0, 0, time.UTC), name}
	}

	base := []holiday{
		fixed(time.January, 1, "New Year's Day"),
		{nthMonday(year, time.January, 2), "Coming of Age Day"},
		fixed(time.February, 11, "National Foundation Day"),
		fixed(time.February, 23, "Emperor's Birthday"),
		{equinox(year, 20.8431), "Vernal Equinox Day"},
		fixed(time.April, 29, "Showa Day"),
		fixed(time.May, 3, "Constitution Memorial Day"),
		fixed(time.May, 4, "Greenery Day"),
		fixed(time.May, 5, "Children's Day"),
		{nthMonday(year, time.July, 3), "Marine Day"},
		fixed(time.August, 11, "Mountain Day"),
		{nthMonday(year, time.September, 3), "Respect for the Aged Day"},
		{equinox(year, 23.2488), "Autumnal Equinox Day"},
		{nthMonday(year, time.October, 2), "Sports Day"},
		fixed(time.November, 3, "Culture Day"),
		fixed(time.November, 23, "Labor Thanksgiving Day"),
	}

	table := make(map[string]string, len(base)+4)
	for _, h := range base {
		table[h.date.Format("01-02")] = h.name
	}

	// Substitute holidays: a holiday on a Sunday pushes the next
	// non-holiday day to a day off.
	for _, h := range base {
		if h.date.Weekday() != time.Sunday {
			continue
		}
		d := h.date.AddDate(0, 0, 1)
		for {
			if _, taken := table[d.Format("01-02")]; !taken {
				table[d.Format("01-02")] = "Substitute Holiday"
				break
			}
			d = d.AddDate(0, 0, 1)
		}
	}

	// Citizens' holiday: a single weekday sandwiched between two holidays
	// becomes a holiday itself (occurs in Silver Week years).
	start := time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 30, 0, 0, 0, 0, time.UTC)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("01-02")
		if _, taken := table[key]; taken || d.Weekday() == time.Sunday {
			continue
		}
		_, prev := table[d.AddDate(0, 0, -1).Format("01-02")]
		_, next := table[d.AddDate(0, 0, 1).Format("01-02")]
		if prev && next {
			table[key] = "Citizens' Holiday"
		}
	}

	return table
}

// nthMonday returns the n-th Monday of the given month.
func nthMonday(year int, month time.Month, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+7*(n-1))
}

// equinox computes the equinox day for the year from the 1980 epoch
// constant (20.8431 vernal, 23.2488 autumnal).
func equinox(year int, epochDay float64) time.Time {
	y := year - 1980
	day := int(epochDay+0.242194*float64(y)) - y/4
	month := time.March
	if epochDay > 22 {
		month = time.September
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
