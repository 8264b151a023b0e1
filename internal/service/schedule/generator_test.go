package schedule

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/role"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdaysOnly = role.DayConfig{
	"Monday":    {Enabled: true},
	"Tuesday":   {Enabled: true},
	"Wednesday": {Enabled: true},
	"Thursday":  {Enabled: true},
	"Friday":    {Enabled: true},
}

func testEmployee(id, name string, roleID *string) employee.Employee {
	return employee.Employee{
		ID:            id,
		DepartmentID:  "dept-1",
		RoleID:        roleID,
		FullName:      name,
		WeeklyHours:   employee.DefaultWeeklyHours,
		DailyMaxHours: employee.DefaultDailyMaxHours,
		ShiftsPerWeek: employee.DefaultShiftsPerWeek,
		IsActive:      true,
	}
}

func testShift(id, name, start, end string, minEmp, maxEmp int) shift.Shift {
	return shift.Shift{
		ID:        id,
		RoleID:    "role-1",
		Name:      name,
		StartTime: start,
		EndTime:   end,
		MinEmp:    minEmp,
		MaxEmp:    maxEmp,
		DayConfig: weekdaysOnly,
		IsActive:  true,
	}
}

func basePlanInput(startDate, endDate string) PlanInput {
	return PlanInput{
		DepartmentID:     "dept-1",
		StartDate:        day(startDate),
		EndDate:          day(endDate),
		Employees:        []employee.Employee{testEmployee("emp-1", "Aiko Tanaka", nil), testEmployee("emp-2", "Kenji Sato", nil)},
		Shifts:           []shift.Shift{testShift("shift-1", "Morning", "09:00", "17:00", 1, 10)},
		RoleBreakMinutes: map[string]int{"role-1": 60},
		Oracle:           stubOracle{},
	}
}

// Two flexible employees and one weekday shift over a plain Mon-Fri week:
// every employee works every weekday.
func TestPlanFullWeek(t *testing.T) {
	result := Plan(basePlanInput("2025-06-02", "2025-06-08"))

	require.Len(t, result.Schedules, 10)
	for _, row := range result.Schedules {
		assert.Equal(t, schedule.StatusScheduled, row.Status)
		assert.NotNil(t, row.StartTime)
		assert.Equal(t, "dept-1", row.DepartmentID)
	}
	assert.Empty(t, result.OvertimeWarnings)
}

// A weekday holiday removes the whole day: 8 rows instead of 10, and the
// skip is reported.
func TestPlanSkipsHolidays(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-08")
	input.Oracle = stubOracle{"2025-06-04": "Foundation Day"}

	result := Plan(input)

	require.Len(t, result.Schedules, 8)
	for _, row := range result.Schedules {
		assert.NotEqual(t, "2025-06-04", row.Date.Format("2006-01-02"))
	}
	require.Len(t, result.Feedback, 1)
	assert.Contains(t, result.Feedback[0], "Foundation Day")
}

func TestPlanRespectsMaxEmp(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-02")
	input.Shifts[0].MaxEmp = 1

	result := Plan(input)

	require.Len(t, result.Schedules, 1)
	// Catalog order decides who gets the slot.
	assert.Equal(t, "emp-1", result.Schedules[0].EmployeeID)
}

func TestPlanReportsUnderstaffing(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-02")
	input.Shifts[0].MinEmp = 3

	result := Plan(input)

	require.Len(t, result.Schedules, 2)
	require.Len(t, result.Feedback, 1)
	assert.Contains(t, result.Feedback[0], "understaffed")
	assert.Contains(t, result.Feedback[0], "2 of 3")
}

// Role-bound employees only fill shifts of their role; flexible employees
// fill anything.
func TestPlanRoleEligibility(t *testing.T) {
	otherRole := "role-2"
	input := basePlanInput("2025-06-02", "2025-06-02")
	input.Employees = []employee.Employee{
		testEmployee("emp-1", "Aiko Tanaka", &otherRole),
		testEmployee("emp-2", "Kenji Sato", nil),
	}

	result := Plan(input)

	require.Len(t, result.Schedules, 1)
	assert.Equal(t, "emp-2", result.Schedules[0].EmployeeID)
}

// Approved leave materializes as rows and blocks assignment for the day.
func TestPlanMaterializesLeave(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-03")
	input.ApprovedLeaves = []leave.LeaveRequest{
		{
			ID:           "leave-1",
			EmployeeID:   "emp-1",
			LeaveType:    leave.LeaveTypePaid,
			DurationType: leave.DurationFullDay,
			StartDate:    day("2025-06-02"),
			EndDate:      day("2025-06-02"),
			Status:       leave.RequestStatusApproved,
		},
	}

	result := Plan(input)

	byKey := make(map[string]schedule.Schedule)
	for _, row := range result.Schedules {
		byKey[row.EmployeeID+"/"+row.Date.Format("2006-01-02")] = row
	}

	leaveRow := byKey["emp-1/2025-06-02"]
	assert.Equal(t, schedule.StatusLeave, leaveRow.Status)
	require.NotNil(t, leaveRow.StartTime)
	require.NotNil(t, leaveRow.EndTime)
	assert.Equal(t, "00:00", *leaveRow.StartTime)
	assert.Equal(t, "23:59", *leaveRow.EndTime)
	assert.Equal(t, schedule.StatusScheduled, byKey["emp-2/2025-06-02"].Status)
	assert.Equal(t, schedule.StatusScheduled, byKey["emp-1/2025-06-03"].Status)
	require.Len(t, result.Schedules, 4)
}

// Half-day rows carry the noon boundary so the remaining half of the day
// stays readable from the row itself.
func TestPlanHalfDayLeaveTimes(t *testing.T) {
	cases := []struct {
		name       string
		duration   leave.DurationType
		status     schedule.Status
		start, end string
	}{
		{"morning", leave.DurationHalfDayMorning, schedule.StatusLeaveHalfMorning, "00:00", "12:00"},
		{"afternoon", leave.DurationHalfDayAfternoon, schedule.StatusLeaveHalfAfternoon, "12:00", "23:59"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := basePlanInput("2025-06-02", "2025-06-02")
			input.ApprovedLeaves = []leave.LeaveRequest{
				{
					ID:           "leave-1",
					EmployeeID:   "emp-1",
					LeaveType:    leave.LeaveTypePaid,
					DurationType: c.duration,
					StartDate:    day("2025-06-02"),
					EndDate:      day("2025-06-02"),
					Status:       leave.RequestStatusApproved,
				},
			}

			result := Plan(input)

			var leaveRow *schedule.Schedule
			for i := range result.Schedules {
				if result.Schedules[i].EmployeeID == "emp-1" {
					leaveRow = &result.Schedules[i]
				}
			}
			require.NotNil(t, leaveRow)
			assert.Equal(t, c.status, leaveRow.Status)
			require.NotNil(t, leaveRow.StartTime)
			require.NotNil(t, leaveRow.EndTime)
			assert.Equal(t, c.start, *leaveRow.StartTime)
			assert.Equal(t, c.end, *leaveRow.EndTime)
		})
	}
}

func TestPlanCompOffLeaveBecomesCompOffTaken(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-02")
	input.ApprovedLeaves = []leave.LeaveRequest{
		{
			ID:           "leave-1",
			EmployeeID:   "emp-2",
			LeaveType:    leave.LeaveTypeCompOff,
			DurationType: leave.DurationFullDay,
			StartDate:    day("2025-06-02"),
			EndDate:      day("2025-06-02"),
			Status:       leave.RequestStatusApproved,
		},
	}

	result := Plan(input)

	var compOffRow *schedule.Schedule
	for i := range result.Schedules {
		if result.Schedules[i].EmployeeID == "emp-2" {
			compOffRow = &result.Schedules[i]
		}
	}
	require.NotNil(t, compOffRow)
	assert.Equal(t, schedule.StatusCompOffTaken, compOffRow.Status)
	assert.Nil(t, compOffRow.StartTime)
}

// A long shift over the warning threshold is still assigned when the daily
// cap allows it, but flagged.
func TestPlanWarnsOnLongShifts(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-02")
	// 10.5h gross minus 60min break = 9.5h worked
	input.Shifts = []shift.Shift{testShift("shift-1", "Long Haul", "09:00", "19:30", 1, 10)}
	for i := range input.Employees {
		input.Employees[i].DailyMaxHours = 12
	}

	result := Plan(input)

	require.Len(t, result.Schedules, 2)
	require.Len(t, result.OvertimeWarnings, 2)
	warning := result.OvertimeWarnings[0]
	assert.Equal(t, "Long Haul", warning.ShiftName)
	assert.InDelta(t, 9.5, warning.TotalHours, 0.001)
}

// A shift past everyone's daily cap assigns nobody, however many slots are
// open. The warning list still records the considered candidates.
func TestPlanEnforcesDailyCap(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-02")
	// 9.5h worked against the default 8h daily cap.
	input.Shifts = []shift.Shift{testShift("shift-1", "Long Haul", "09:00", "19:30", 1, 10)}

	result := Plan(input)

	assert.Empty(t, result.Schedules)
	assert.Len(t, result.OvertimeWarnings, 2)
	require.Len(t, result.Feedback, 1)
	assert.Contains(t, result.Feedback[0], "understaffed")
}

// The weekly cap cuts the week short: four 9h days fit into 40 hours, the
// fifth would not.
func TestPlanEnforcesWeeklyCap(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-08")
	// 10h gross minus 60min break = 9h worked per day.
	input.Shifts = []shift.Shift{testShift("shift-1", "Long Day", "09:00", "19:00", 1, 10)}
	for i := range input.Employees {
		input.Employees[i].DailyMaxHours = 10
	}

	result := Plan(input)

	require.Len(t, result.Schedules, 8)
	for _, row := range result.Schedules {
		assert.NotEqual(t, time.Friday, row.Date.Weekday())
	}
	require.Len(t, result.Feedback, 1)
	assert.Contains(t, result.Feedback[0], "understaffed")
}

// Existing rows carried into the snapshot hold their owners to the limits:
// emp-1's Friday would be a sixth straight day and push the week past the
// 40-hour cap.
func TestPlanHonorsExistingRows(t *testing.T) {
	input := basePlanInput("2025-06-06", "2025-06-06")
	existing := make([]schedule.Schedule, 0, 5)
	for _, d := range []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"} {
		start, end := "09:00", "17:00"
		roleID := "role-1"
		existing = append(existing, schedule.Schedule{
			ID: "ex-" + d, DepartmentID: "dept-1", EmployeeID: "emp-1",
			RoleID: &roleID, Date: day(d), StartTime: &start, EndTime: &end,
			Status: schedule.StatusScheduled,
		})
	}
	// emp-1 also worked the previous Saturday, filling the week quota
	start, end := "09:00", "17:00"
	existing = append(existing, schedule.Schedule{
		ID: "ex-sat", DepartmentID: "dept-1", EmployeeID: "emp-1",
		StartTime: &start, EndTime: &end,
		Date:      day("2025-06-07"), Status: schedule.StatusScheduled,
	})
	input.Existing = existing

	result := Plan(input)

	// Only emp-2 is assignable on Friday.
	require.Len(t, result.Schedules, 1)
	assert.Equal(t, "emp-2", result.Schedules[0].EmployeeID)
}

// The consecutive-day guard blocks a sixth straight working day even when
// the quota would allow it (holiday weeks lower the quota floor, not the
// fatigue rule).
func TestPlanConsecutiveGuard(t *testing.T) {
	input := basePlanInput("2025-06-07", "2025-06-07")
	input.Shifts[0].DayConfig = role.DayConfig{"Saturday": {Enabled: true}}
	existing := make([]schedule.Schedule, 0, 5)
	for _, d := range []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06"} {
		existing = append(existing, schedule.Schedule{
			ID: "ex-" + d, DepartmentID: "dept-1", EmployeeID: "emp-1",
			Date: day(d), Status: schedule.StatusScheduled,
		})
	}
	input.Existing = existing

	result := Plan(input)

	for _, row := range result.Schedules {
		assert.NotEqual(t, "emp-1", row.EmployeeID)
	}
}

func TestPlanShiftDayConfig(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-08")
	input.Shifts[0].DayConfig = role.DayConfig{"Monday": {Enabled: true}}

	result := Plan(input)

	require.Len(t, result.Schedules, 2)
	for _, row := range result.Schedules {
		assert.Equal(t, time.Monday, row.Date.Weekday())
	}
}

func TestPlanLegacyDayConfigRunsEveryDay(t *testing.T) {
	input := basePlanInput("2025-06-02", "2025-06-03")
	input.Shifts[0].DayConfig = nil

	result := Plan(input)

	assert.Len(t, result.Schedules, 4)
}
