package attendance

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/attendance"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punch(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-06-02 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func TestReconcilePlainDay(t *testing.T) {
	// 9h punch-to-punch, 1h break, inside the daily cap
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("18:00"),
		ShiftEnd:      ptr("18:00"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
	})

	assert.InDelta(t, 8, result.WorkedHours, 0.001)
	assert.Equal(t, 0.0, result.OvertimeHours)
	assert.Equal(t, 0.0, result.UnapprovedExcessHours)
	assert.Equal(t, 0.0, result.RecordedOvertime())
	assert.Nil(t, result.Note)
}

// A session shorter than the break allowance keeps its punch-to-punch time;
// the break is not charged against time that was never there.
func TestReconcileShortSessionKeepsBreak(t *testing.T) {
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("09:30"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
	})

	assert.InDelta(t, 0.5, result.WorkedHours, 0.001)
	assert.Equal(t, 0.0, result.OvertimeHours)
}

// The windowed case: shift ends 18:00, approved window 18:00-20:00 for 1.5h,
// check-out at 19:30. Overtime runs shift end to check-out: exactly 1.5h.
func TestReconcileWindowedOvertime(t *testing.T) {
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("19:30"),
		ShiftEnd:      ptr("18:00"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
		Approved: &overtime.OvertimeRequest{
			FromTime:     ptr("18:00"),
			ToTime:       ptr("20:00"),
			RequestHours: 1.5,
		},
	})

	assert.InDelta(t, 9.5, result.WorkedHours, 0.001)
	assert.InDelta(t, 1.5, result.OvertimeHours, 0.001)
	assert.Equal(t, 0.0, result.UnapprovedExcessHours)
}

// The window clips on both ends: work before the window start and after the
// window end never counts.
func TestReconcileWindowClipping(t *testing.T) {
	t.Run("check-out before window end", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			CheckIn:       punch("09:00"),
			CheckOut:      punch("19:00"),
			ShiftEnd:      ptr("18:00"),
			BreakMinutes:  60,
			DailyMaxHours: 8,
			Approved: &overtime.OvertimeRequest{
				FromTime:     ptr("18:00"),
				ToTime:       ptr("21:00"),
				RequestHours: 3,
			},
		})
		assert.InDelta(t, 1, result.OvertimeHours, 0.001)
	})

	t.Run("check-out after window end", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			CheckIn:       punch("09:00"),
			CheckOut:      punch("21:30"),
			ShiftEnd:      ptr("18:00"),
			BreakMinutes:  60,
			DailyMaxHours: 8,
			Approved: &overtime.OvertimeRequest{
				FromTime:     ptr("18:00"),
				ToTime:       ptr("20:00"),
				RequestHours: 2,
			},
		})
		assert.InDelta(t, 2, result.OvertimeHours, 0.001)
	})

	t.Run("shift end after window start moves the overtime start", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			CheckIn:       punch("09:00"),
			CheckOut:      punch("20:00"),
			ShiftEnd:      ptr("19:00"),
			BreakMinutes:  60,
			DailyMaxHours: 8,
			Approved: &overtime.OvertimeRequest{
				FromTime:     ptr("18:00"),
				ToTime:       ptr("21:00"),
				RequestHours: 3,
			},
		})
		assert.InDelta(t, 1, result.OvertimeHours, 0.001)
	})

	t.Run("check-out before window start yields zero", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			CheckIn:       punch("09:00"),
			CheckOut:      punch("17:30"),
			ShiftEnd:      ptr("18:00"),
			BreakMinutes:  60,
			DailyMaxHours: 8,
			Approved: &overtime.OvertimeRequest{
				FromTime:     ptr("18:00"),
				ToTime:       ptr("20:00"),
				RequestHours: 2,
			},
		})
		assert.Equal(t, 0.0, result.OvertimeHours)
	})
}

// The request-hours cap applies after the window math; the overrun is
// reported as unapproved excess.
func TestReconcileRequestHoursCap(t *testing.T) {
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("21:00"),
		ShiftEnd:      ptr("18:00"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
		Approved: &overtime.OvertimeRequest{
			FromTime:     ptr("18:00"),
			ToTime:       ptr("21:00"),
			RequestHours: 2,
		},
	})

	assert.InDelta(t, 2, result.OvertimeHours, 0.001)
	assert.InDelta(t, 1, result.UnapprovedExcessHours, 0.001)
	// Only the approved share lands on the attendance row.
	assert.InDelta(t, 2, result.RecordedOvertime(), 0.001)
	require.NotNil(t, result.Note)
	assert.Contains(t, *result.Note, "beyond the approved overtime request")
}

// A windowless approval pays worked time past the daily cap, up to the
// requested hours.
func TestReconcileWindowlessOvertime(t *testing.T) {
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("19:30"),
		ShiftEnd:      ptr("18:00"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
		Approved: &overtime.OvertimeRequest{
			RequestHours: 3,
		},
	})

	assert.InDelta(t, 9.5, result.WorkedHours, 0.001)
	assert.InDelta(t, 1.5, result.OvertimeHours, 0.001)
}

// Without approval the excess is recorded but never paid.
func TestReconcileUnapprovedExcess(t *testing.T) {
	result := Reconcile(ReconcileInput{
		CheckIn:       punch("09:00"),
		CheckOut:      punch("19:30"),
		ShiftEnd:      ptr("18:00"),
		BreakMinutes:  60,
		DailyMaxHours: 8,
	})

	assert.InDelta(t, 9.5, result.WorkedHours, 0.001)
	assert.Equal(t, 0.0, result.OvertimeHours)
	assert.InDelta(t, 1.5, result.UnapprovedExcessHours, 0.001)
	// The excess still reaches the attendance row, as informational hours.
	assert.InDelta(t, 1.5, result.RecordedOvertime(), 0.001)
	require.NotNil(t, result.Note)
	assert.Contains(t, *result.Note, "without an approved overtime request")
}

func TestGradeCheckIn(t *testing.T) {
	cases := []struct {
		name   string
		now    string
		start  string
		status attendance.CheckInStatus
		late   int
	}{
		{"early", "08:45", "09:00", attendance.CheckInStatusOnTime, 0},
		{"exactly on time", "09:00", "09:00", attendance.CheckInStatusOnTime, 0},
		{"within grace", "09:10", "09:00", attendance.CheckInStatusSlightlyLate, 10},
		{"at grace boundary", "09:15", "09:00", attendance.CheckInStatusSlightlyLate, 15},
		{"past grace", "09:16", "09:00", attendance.CheckInStatusLate, 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, late := gradeCheckIn(punch(c.now), c.start)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.late, late)
		})
	}
}
