// Package calendar provides public-holiday lookup and the weekly shift-quota
// arithmetic that the scheduling engine is built on.
package calendar

import (
	"time"
)

// Oracle answers public-holiday questions for one jurisdiction.
type Oracle interface {
	IsHoliday(date time.Time) bool
	HolidayName(date time.Time) (string, bool)
}

// DayInfo describes a single day of a week for scheduling purposes.
type DayInfo struct {
	Date         time.Time `json:"date"`
	DayName      string    `json:"day_name"`
	IsWeekend    bool      `json:"is_weekend"`
	IsHoliday    bool      `json:"is_holiday"`
	HolidayName  *string   `json:"holiday_name"`
	IsNonWorking bool      `json:"is_non_working"`
}

// WeekSummary is the per-week breakdown used by scheduling UIs and the
// weekly-quota validator.
type WeekSummary struct {
	WeekStart           time.Time `json:"week_start"`
	WeekEnd             time.Time `json:"week_end"`
	Days                []DayInfo `json:"days"`
	WeekendCount        int       `json:"weekend_count"`
	HolidayCount        int       `json:"holiday_count"`
	WeekdayHolidayCount int       `json:"weekday_holiday_count"`
	RequiredShifts      int       `json:"required_shifts"`
}

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekStart returns the Monday of the week containing date, at midnight in
// date's location.
func WeekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// RequiredShiftsForWeek returns the number of shifts required for the week
// starting at weekStart (a Monday): base 5, minus one per weekday holiday,
// never below 4.
func RequiredShiftsForWeek(oracle Oracle, weekStart time.Time) int {
	weekdayHolidays := 0
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if !IsWeekend(d) && oracle.IsHoliday(d) {
			weekdayHolidays++
		}
	}
	required := 5 - weekdayHolidays
	if required < 4 {
		required = 4
	}
	return required
}

// WeekInfo returns the full per-day breakdown for the week starting at
// weekStart, including the required shift count.
func WeekInfo(oracle Oracle, weekStart time.Time) WeekSummary {
	summary := WeekSummary{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Days:      make([]DayInfo, 0, 7),
	}

	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		info := DayInfo{
			Date:      d,
			DayName:   d.Weekday().String(),
			IsWeekend: IsWeekend(d),
			IsHoliday: oracle.IsHoliday(d),
		}
		if name, ok := oracle.HolidayName(d); ok {
			info.HolidayName = &name
		}
		info.IsNonWorking = info.IsWeekend || info.IsHoliday

		summary.Days = append(summary.Days, info)
		if info.IsWeekend {
			summary.WeekendCount++
		}
		if info.IsHoliday {
			summary.HolidayCount++
			if !info.IsWeekend {
				summary.WeekdayHolidayCount++
			}
		}
	}

	required := 5 - summary.WeekdayHolidayCount
	if required < 4 {
		required = 4
	}
	summary.RequiredShifts = required
	return summary
}

// HolidaysInRange returns every holiday in [start, end] keyed by date
// ("2006-01-02").
func HolidaysInRange(oracle Oracle, start, end time.Time) map[string]string {
	holidays := make(map[string]string)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if name, ok := oracle.HolidayName(d); ok {
			holidays[d.Format("2006-01-02")] = name
		}
	}
	return holidays
}

// NonWorkingDaysInRange returns weekends (keyed by weekday name) and holidays
// (keyed by holiday name) in [start, end].
func NonWorkingDaysInRange(oracle Oracle, start, end time.Time) map[string]string {
	days := make(map[string]string)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			days[d.Format("2006-01-02")] = d.Weekday().String()
		} else if name, ok := oracle.HolidayName(d); ok {
			days[d.Format("2006-01-02")] = name
		}
	}
	return days
}
