package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
)

// MaxConsecutiveDays is the longest run of consecutive working days an
// employee may be scheduled for.
const MaxConsecutiveDays = 5

// OvertimeWarningHours is the same-day hour total above which the generator
// flags an assignment. Warnings never block the assignment.
const OvertimeWarningHours = 9.0

const dateKeyLayout = "2006-01-02"

// CheckWeeklyQuota decides whether the employee can take one more shift in
// the week containing date. rows must hold the employee's non-cancelled rows
// for that week, excluding the row identified by excludeID (pass "" to keep
// all).
//
// Weekday (Mon-Fri) rows and weekend rows are counted separately: a weekday
// target is judged against weekday coverage alone, while a weekend target is
// rejected either when the weekdays already cover the quota or when weekdays
// plus regular weekend shifts reach it. Weekend comp-off days count in
// neither bucket, so they stay a bonus on top of the quota.
func CheckWeeklyQuota(oracle calendar.Oracle, rows []schedule.Schedule, date time.Time, excludeID string) (bool, string) {
	weekStart := calendar.WeekStart(date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	weekdayCoverage := 0
	weekendRegular := 0
	for _, row := range rows {
		if excludeID != "" && row.ID == excludeID {
			continue
		}
		if row.Date.Before(weekStart) || row.Date.After(weekEnd) {
			continue
		}
		if calendar.IsWeekend(row.Date) {
			if schedule.StatusIn(row.Status, schedule.WeekendRegularStatuses) {
				weekendRegular++
			}
		} else if schedule.StatusIn(row.Status, schedule.WeekdayCoverageStatuses) {
			weekdayCoverage++
		}
	}

	required := calendar.RequiredShiftsForWeek(oracle, weekStart)
	holidayNote := weekdayHolidayNote(oracle, weekStart)

	if calendar.IsWeekend(date) {
		if weekdayCoverage >= required {
			return false, fmt.Sprintf(
				"weekly quota reached: %d weekday shifts already cover the required %d in week of %s%s",
				weekdayCoverage, required, weekStart.Format(dateKeyLayout), holidayNote)
		}
		if weekdayCoverage+weekendRegular >= required {
			return false, fmt.Sprintf(
				"weekly quota reached: %d weekday + %d weekend shifts meet the required %d in week of %s%s",
				weekdayCoverage, weekendRegular, required, weekStart.Format(dateKeyLayout), holidayNote)
		}
		return true, ""
	}

	if weekdayCoverage >= required {
		return false, fmt.Sprintf(
			"weekly quota reached: %d of %d weekday shifts already taken in week of %s%s",
			weekdayCoverage, required, weekStart.Format(dateKeyLayout), holidayNote)
	}
	return true, ""
}

// weekdayHolidayNote names the weekday holidays that lowered the week's
// quota, "" when the week has none.
func weekdayHolidayNote(oracle calendar.Oracle, weekStart time.Time) string {
	var names []string
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if calendar.IsWeekend(d) {
			continue
		}
		if name, ok := oracle.HolidayName(d); ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d weekday holiday(s) lower the quota: %s)", len(names), strings.Join(names, ", "))
}

// CheckConsecutiveRun decides whether scheduling the employee on date keeps
// the run of consecutive working days within MaxConsecutiveDays. Only rows in
// the Monday-start week containing date are considered; a run is never
// charged across a week boundary.
func CheckConsecutiveRun(rows []schedule.Schedule, date time.Time, excludeID string) (bool, string) {
	weekStart := calendar.WeekStart(date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	working := make(map[string]bool, len(rows))
	for _, row := range rows {
		if excludeID != "" && row.ID == excludeID {
			continue
		}
		if row.Date.Before(weekStart) || row.Date.After(weekEnd) {
			continue
		}
		if schedule.StatusIn(row.Status, schedule.ConsecutiveRunStatuses) {
			working[row.Date.Format(dateKeyLayout)] = true
		}
	}

	run := 1
	for d := date.AddDate(0, 0, -1); working[d.Format(dateKeyLayout)]; d = d.AddDate(0, 0, -1) {
		run++
	}
	for d := date.AddDate(0, 0, 1); working[d.Format(dateKeyLayout)]; d = d.AddDate(0, 0, 1) {
		run++
	}

	if run > MaxConsecutiveDays {
		return false, fmt.Sprintf("would work %d consecutive days, limit is %d", run, MaxConsecutiveDays)
	}
	return true, ""
}
