package attendance

import (
	"fmt"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/overtime"
)

const clockLayout = "15:04"

// ReconcileInput is everything check-out needs to settle a day's hours.
type ReconcileInput struct {
	CheckIn  time.Time
	CheckOut time.Time

	// ShiftEnd is the scheduled "HH:MM" end clock, nil when the session has
	// no schedule row.
	ShiftEnd     *string
	BreakMinutes int

	// DailyMaxHours is the employee's regular daily cap; hours past it are
	// overtime candidates.
	DailyMaxHours float64

	// Approved is the approved overtime request for the date, nil when none.
	Approved *overtime.OvertimeRequest
}

// ReconcileResult is the settled outcome written to the attendance row.
type ReconcileResult struct {
	WorkedHours float64
	// OvertimeHours is the approved, clipped overtime that counts against
	// the monthly budget.
	OvertimeHours float64
	// UnapprovedExcessHours is worked time past the daily cap with no
	// approval behind it. Recorded for visibility, never paid.
	UnapprovedExcessHours float64
	Note                  *string
}

// RecordedOvertime is the number the attendance row carries: approved
// overtime when there is any, otherwise the unapproved excess. The row keeps
// no flag telling the two apart, only the note does.
func (r ReconcileResult) RecordedOvertime() float64 {
	if r.OvertimeHours > 0 {
		return r.OvertimeHours
	}
	return r.UnapprovedExcessHours
}

func clockHours(clock string) float64 {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0
	}
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// Reconcile settles worked and overtime hours for one session.
//
// Worked hours are punch-to-punch minus the break allowance. Overtime is
// clipped three ways: an approved request with a window pays only the overlap
// of [shift end, check-out] with the window, an approved request without a
// window pays worked time past the daily cap, and both are capped at the
// requested hours. Excess beyond approval is reported, not paid.
func Reconcile(in ReconcileInput) ReconcileResult {
	result := ReconcileResult{}

	gross := in.CheckOut.Sub(in.CheckIn).Hours()
	if gross < 0 {
		gross = 0
	}
	worked := gross
	// The break only comes out of sessions long enough to have taken it.
	if breakHours := float64(in.BreakMinutes) / 60.0; gross >= breakHours {
		worked = gross - breakHours
	}
	result.WorkedHours = worked

	excess := worked - in.DailyMaxHours
	if excess < 0 {
		excess = 0
	}

	if in.Approved == nil {
		if excess > 0 {
			result.UnapprovedExcessHours = excess
			note := fmt.Sprintf("%.2f hours past the daily cap without an approved overtime request", excess)
			result.Note = &note
		}
		return result
	}

	var ot float64
	if in.Approved.FromTime != nil && in.Approved.ToTime != nil {
		ot = windowedOvertime(in)
	} else {
		ot = excess
	}

	if ot > in.Approved.RequestHours {
		overrun := ot - in.Approved.RequestHours
		ot = in.Approved.RequestHours
		result.UnapprovedExcessHours = overrun
		note := fmt.Sprintf("%.2f hours beyond the approved overtime request", overrun)
		result.Note = &note
	}
	if ot < 0 {
		ot = 0
	}
	result.OvertimeHours = ot
	return result
}

// windowedOvertime measures the overlap of actual overtime work with the
// approved window: it starts at the later of shift end and window start, and
// ends at the earlier of check-out and window end.
func windowedOvertime(in ReconcileInput) float64 {
	windowStart := clockHours(*in.Approved.FromTime)
	windowEnd := clockHours(*in.Approved.ToTime)

	otStart := windowStart
	if in.ShiftEnd != nil {
		if shiftEnd := clockHours(*in.ShiftEnd); shiftEnd > otStart {
			otStart = shiftEnd
		}
	}

	checkOutClock := float64(in.CheckOut.Hour()) + float64(in.CheckOut.Minute())/60.0
	otEnd := checkOutClock
	if windowEnd < otEnd {
		otEnd = windowEnd
	}

	if otEnd <= otStart {
		return 0
	}
	return otEnd - otStart
}
