package schedule

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

// stubOracle marks the listed dates as holidays.
type stubOracle map[string]string

func (o stubOracle) IsHoliday(date time.Time) bool {
	_, ok := o[date.Format("2006-01-02")]
	return ok
}

func (o stubOracle) HolidayName(date time.Time) (string, bool) {
	name, ok := o[date.Format("2006-01-02")]
	return name, ok
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func rowsOn(status schedule.Status, dates ...string) []schedule.Schedule {
	rows := make([]schedule.Schedule, 0, len(dates))
	for i, d := range dates {
		rows = append(rows, schedule.Schedule{
			ID:         string(rune('a' + i)),
			EmployeeID: "emp-1",
			Date:       day(d),
			Status:     status,
		})
	}
	return rows
}

func TestCheckWeeklyQuota(t *testing.T) {
	// Week of Mon 2025-06-02.
	t.Run("allows up to five shifts in a plain week", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05")
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-06"), "")
		assert.True(t, ok, reason)
	})

	t.Run("rejects the sixth shift", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06")
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-07"), "")
		assert.False(t, ok)
		assert.Contains(t, reason, "weekly quota reached")
	})

	t.Run("one weekday holiday lowers the quota to four", func(t *testing.T) {
		oracle := stubOracle{"2025-06-04": "Midweek Holiday"}
		rows := rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-05", "2025-06-06")
		ok, _ := CheckWeeklyQuota(oracle, rows, day("2025-06-07"), "")
		assert.False(t, ok)
	})

	t.Run("quota never drops below four", func(t *testing.T) {
		oracle := stubOracle{
			"2025-06-02": "A", "2025-06-03": "B", "2025-06-04": "C",
		}
		rows := rowsOn(schedule.StatusScheduled, "2025-06-05", "2025-06-06", "2025-06-07")
		ok, _ := CheckWeeklyQuota(oracle, rows, day("2025-06-08"), "")
		assert.True(t, ok)
	})

	t.Run("leave days occupy weekday slots", func(t *testing.T) {
		rows := append(
			rowsOn(schedule.StatusLeave, "2025-06-02", "2025-06-03"),
			rowsOn(schedule.StatusScheduled, "2025-06-04", "2025-06-05", "2025-06-06")...)
		ok, _ := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-07"), "")
		assert.False(t, ok)
	})

	t.Run("weekend comp-off is a bonus day, not quota", func(t *testing.T) {
		rows := append(
			rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"),
			rowsOn(schedule.StatusCompOffTaken, "2025-06-07")...)
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-06"), "")
		assert.True(t, ok, reason)
	})

	t.Run("excluded row does not count", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06")
		ok, _ := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-06"), rows[4].ID)
		assert.True(t, ok)
	})

	t.Run("rows from other weeks are ignored", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-05-26", "2025-05-27", "2025-05-28", "2025-05-29", "2025-05-30")
		ok, _ := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-02"), "")
		assert.True(t, ok)
	})

	t.Run("a weekend shift does not consume the weekday quota", func(t *testing.T) {
		// Four weekday shifts plus a Saturday one: the Friday target only
		// competes with the four weekday rows.
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-07")
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-06"), "")
		assert.True(t, ok, reason)
	})

	t.Run("weekday and weekend shifts together fill a weekend target", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-07")
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-08"), "")
		assert.False(t, ok)
		assert.Contains(t, reason, "4 weekday + 1 weekend")
	})

	t.Run("a weekend target below the combined quota is allowed", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-07")
		ok, reason := CheckWeeklyQuota(stubOracle{}, rows, day("2025-06-08"), "")
		assert.True(t, ok, reason)
	})

	t.Run("rejections name the holidays that lowered the quota", func(t *testing.T) {
		oracle := stubOracle{"2025-06-04": "Midweek Holiday"}
		rows := rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-05", "2025-06-06")
		ok, reason := CheckWeeklyQuota(oracle, rows, day("2025-06-07"), "")
		assert.False(t, ok)
		assert.Contains(t, reason, "Midweek Holiday")
		assert.Contains(t, reason, "required 4")
	})
}

func TestCheckConsecutiveRun(t *testing.T) {
	t.Run("fifth consecutive day is allowed", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05")
		ok, _ := CheckConsecutiveRun(rows, day("2025-06-06"), "")
		assert.True(t, ok)
	})

	t.Run("sixth consecutive day is rejected", func(t *testing.T) {
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06")
		ok, reason := CheckConsecutiveRun(rows, day("2025-06-07"), "")
		assert.False(t, ok)
		assert.Contains(t, reason, "consecutive")
	})

	t.Run("bridging two runs counts both sides", func(t *testing.T) {
		rows := append(
			rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-04"),
			rowsOn(schedule.StatusScheduled, "2025-06-06", "2025-06-07")...)
		ok, _ := CheckConsecutiveRun(rows, day("2025-06-05"), "")
		assert.False(t, ok)
	})

	t.Run("a gap resets the run", func(t *testing.T) {
		rows := append(
			rowsOn(schedule.StatusScheduled, "2025-06-02", "2025-06-03", "2025-06-04"),
			rowsOn(schedule.StatusScheduled, "2025-06-07")...)
		ok, _ := CheckConsecutiveRun(rows, day("2025-06-08"), "")
		assert.True(t, ok)
	})

	t.Run("comp-off earned days do not extend the run", func(t *testing.T) {
		rows := append(
			rowsOn(schedule.StatusScheduled, "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06"),
			rowsOn(schedule.StatusCompOffEarned, "2025-06-02")...)
		ok, _ := CheckConsecutiveRun(rows, day("2025-06-07"), "")
		assert.True(t, ok)
	})

	t.Run("the run is judged within the target week only", func(t *testing.T) {
		// Wed through Sun of the prior week never charge a Monday target.
		rows := rowsOn(schedule.StatusScheduled,
			"2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08")
		ok, _ := CheckConsecutiveRun(rows, day("2025-06-09"), "")
		assert.True(t, ok)
	})
}
