package schedule

import (
	"fmt"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
)

// PlanInput is the immutable snapshot the planner folds over. The service
// loads it up front so planning itself touches no storage.
type PlanInput struct {
	DepartmentID string
	StartDate    time.Time
	EndDate      time.Time

	// Employees and Shifts come in catalog order; the planner fills shifts
	// greedily from the front of each list.
	Employees []employee.Employee
	Shifts    []shift.Shift

	// RoleBreakMinutes maps role ID to its break allowance.
	RoleBreakMinutes map[string]int

	// Existing holds non-cancelled rows in the planning range plus a
	// MaxConsecutiveDays margin on both sides and the full first and last
	// weeks, so the validators see complete context.
	Existing []schedule.Schedule

	// ApprovedLeaves overlap the planning range; the planner materializes
	// them into leave and comp-off-taken rows before assigning shifts.
	ApprovedLeaves []leave.LeaveRequest

	Oracle calendar.Oracle
}

// PlanResult is what the planner decided. Schedules have no IDs yet; the
// service assigns them when persisting.
type PlanResult struct {
	Schedules        []schedule.Schedule
	Feedback         []string
	OvertimeWarnings []schedule.OvertimeWarning
}

// planState tracks rows per employee as the fold progresses, existing and
// newly planned alike, so the validators judge each candidate against the
// plan so far.
type planState struct {
	byEmployee map[string][]schedule.Schedule
	byDate     map[string]map[string]bool // dateKey -> employeeID -> occupied
}

func newPlanState(existing []schedule.Schedule) *planState {
	st := &planState{
		byEmployee: make(map[string][]schedule.Schedule),
		byDate:     make(map[string]map[string]bool),
	}
	for _, row := range existing {
		st.add(row)
	}
	return st
}

func (st *planState) add(row schedule.Schedule) {
	st.byEmployee[row.EmployeeID] = append(st.byEmployee[row.EmployeeID], row)
	key := row.Date.Format(dateKeyLayout)
	if st.byDate[key] == nil {
		st.byDate[key] = make(map[string]bool)
	}
	st.byDate[key][row.EmployeeID] = true
}

func (st *planState) occupied(employeeID string, date time.Time) bool {
	return st.byDate[date.Format(dateKeyLayout)][employeeID]
}

// hoursOn sums worked hours already carried by the employee's rows on date.
func (st *planState) hoursOn(employeeID string, date time.Time, breaks map[string]int) float64 {
	total := 0.0
	key := date.Format(dateKeyLayout)
	for _, row := range st.byEmployee[employeeID] {
		if row.Date.Format(dateKeyLayout) != key {
			continue
		}
		total += rowWorkHours(row, breaks)
	}
	return total
}

// hoursInWeek sums worked hours carried by the employee's rows across the
// whole week containing date.
func (st *planState) hoursInWeek(employeeID string, date time.Time, breaks map[string]int) float64 {
	weekStart := calendar.WeekStart(date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	total := 0.0
	for _, row := range st.byEmployee[employeeID] {
		if row.Date.Before(weekStart) || row.Date.After(weekEnd) {
			continue
		}
		total += rowWorkHours(row, breaks)
	}
	return total
}

// rowWorkHours is the hours one row contributes to the caps: zero unless the
// status counts and the row carries shift times.
func rowWorkHours(row schedule.Schedule, breaks map[string]int) float64 {
	if !schedule.StatusIn(row.Status, schedule.HourCountingStatuses) {
		return 0
	}
	if row.StartTime == nil || row.EndTime == nil {
		return 0
	}
	breakMinutes := 0
	if row.RoleID != nil {
		breakMinutes = breaks[*row.RoleID]
	}
	return WorkHours(*row.StartTime, *row.EndTime, breakMinutes)
}

// Plan walks the date range day by day: holidays are skipped outright,
// approved leave is materialized first, then each shift that runs on the
// weekday is filled greedily from the employee catalog. Validators and the
// daily/weekly hour caps veto candidates; crossing the same-day warning
// threshold only flags.
func Plan(in PlanInput) PlanResult {
	result := PlanResult{}
	st := newPlanState(in.Existing)

	for day := in.StartDate; !day.After(in.EndDate); day = day.AddDate(0, 0, 1) {
		if name, ok := in.Oracle.HolidayName(day); ok {
			result.Feedback = append(result.Feedback,
				fmt.Sprintf("skipped %s: public holiday (%s)", day.Format(dateKeyLayout), name))
			continue
		}

		planLeaveRows(in, day, st, &result)

		for _, sh := range in.Shifts {
			if !sh.DayConfig.RunsOn(day.Weekday()) {
				continue
			}
			planShiftDay(in, sh, day, st, &result)
		}
	}

	return result
}

// planLeaveRows creates the leave and comp-off-taken rows for every approved
// request covering day, unless the employee already holds a row.
func planLeaveRows(in PlanInput, day time.Time, st *planState, result *PlanResult) {
	for _, lr := range in.ApprovedLeaves {
		if day.Before(lr.StartDate) || day.After(lr.EndDate) {
			continue
		}
		if st.occupied(lr.EmployeeID, day) {
			continue
		}

		status := schedule.StatusLeave
		switch {
		case lr.LeaveType == leave.LeaveTypeCompOff:
			status = schedule.StatusCompOffTaken
		case lr.DurationType == leave.DurationHalfDayMorning:
			status = schedule.StatusLeaveHalfMorning
		case lr.DurationType == leave.DurationHalfDayAfternoon:
			status = schedule.StatusLeaveHalfAfternoon
		}

		startTime, endTime := schedule.LeaveClockBounds(status)
		row := schedule.Schedule{
			DepartmentID: in.DepartmentID,
			EmployeeID:   lr.EmployeeID,
			Date:         day,
			StartTime:    startTime,
			EndTime:      endTime,
			Status:       status,
		}
		st.add(row)
		result.Schedules = append(result.Schedules, row)
	}
}

// planShiftDay fills one shift on one day up to MaxEmp, reporting
// understaffing against MinEmp.
func planShiftDay(in PlanInput, sh shift.Shift, day time.Time, st *planState, result *PlanResult) {
	assigned := 0
	shiftHours := WorkHours(sh.StartTime, sh.EndTime, in.RoleBreakMinutes[sh.RoleID])

	for _, emp := range in.Employees {
		if assigned >= sh.MaxEmp {
			break
		}
		if emp.RoleID != nil && *emp.RoleID != sh.RoleID {
			continue
		}
		if st.occupied(emp.ID, day) {
			continue
		}

		rows := st.byEmployee[emp.ID]
		if ok, _ := CheckWeeklyQuota(in.Oracle, rows, day, ""); !ok {
			continue
		}
		if ok, _ := CheckConsecutiveRun(rows, day, ""); !ok {
			continue
		}

		existingHours := st.hoursOn(emp.ID, day, in.RoleBreakMinutes)
		if existingHours+shiftHours > OvertimeWarningHours {
			result.OvertimeWarnings = append(result.OvertimeWarnings, schedule.OvertimeWarning{
				EmployeeID:    emp.ID,
				EmployeeName:  emp.FullName,
				Date:          day.Format(dateKeyLayout),
				ShiftName:     sh.Name,
				ExistingHours: existingHours,
				ShiftHours:    shiftHours,
				TotalHours:    existingHours + shiftHours,
			})
		}

		// Hour caps are hard limits; the warning above is advisory only.
		if existingHours+shiftHours > emp.DailyMaxHours {
			continue
		}
		if st.hoursInWeek(emp.ID, day, in.RoleBreakMinutes)+shiftHours > emp.WeeklyHours {
			continue
		}

		roleID := sh.RoleID
		startTime := sh.StartTime
		endTime := sh.EndTime
		shiftID := sh.ID
		row := schedule.Schedule{
			DepartmentID: in.DepartmentID,
			EmployeeID:   emp.ID,
			RoleID:       &roleID,
			ShiftID:      &shiftID,
			Date:         day,
			StartTime:    &startTime,
			EndTime:      &endTime,
			Status:       schedule.StatusScheduled,
		}
		st.add(row)
		result.Schedules = append(result.Schedules, row)
		assigned++
	}

	if assigned < sh.MinEmp {
		result.Feedback = append(result.Feedback,
			fmt.Sprintf("understaffed: %s on %s has %d of %d required employees",
				sh.Name, day.Format(dateKeyLayout), assigned, sh.MinEmp))
	}
}
