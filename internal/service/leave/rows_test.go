package leave

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowStatusFor(t *testing.T) {
	cases := []struct {
		name     string
		request  leave.LeaveRequest
		expected schedule.Status
	}{
		{"comp-off", leave.LeaveRequest{LeaveType: leave.LeaveTypeCompOff, DurationType: leave.DurationFullDay}, schedule.StatusCompOffTaken},
		{"full day", leave.LeaveRequest{LeaveType: leave.LeaveTypePaid, DurationType: leave.DurationFullDay}, schedule.StatusLeave},
		{"half morning", leave.LeaveRequest{LeaveType: leave.LeaveTypePaid, DurationType: leave.DurationHalfDayMorning}, schedule.StatusLeaveHalfMorning},
		{"half afternoon", leave.LeaveRequest{LeaveType: leave.LeaveTypeUnpaid, DurationType: leave.DurationHalfDayAfternoon}, schedule.StatusLeaveHalfAfternoon},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, rowStatusFor(c.request))
		})
	}
}

// Approved leave days become schedule rows with the clock bounds of their
// status: full days span the whole day, halves split at noon, comp-off days
// carry no times.
func TestLeaveScheduleRow(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", DepartmentID: "dept-1"}
	day, err := time.Parse("2006-01-02", "2025-06-02")
	require.NoError(t, err)

	cases := []struct {
		name       string
		status     schedule.Status
		start, end *string
	}{
		{"full day", schedule.StatusLeave, ptr("00:00"), ptr("23:59")},
		{"half morning", schedule.StatusLeaveHalfMorning, ptr("00:00"), ptr("12:00")},
		{"half afternoon", schedule.StatusLeaveHalfAfternoon, ptr("12:00"), ptr("23:59")},
		{"comp-off taken", schedule.StatusCompOffTaken, nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row := leaveScheduleRow(emp, day, c.status)

			assert.Equal(t, "emp-1", row.EmployeeID)
			assert.Equal(t, "dept-1", row.DepartmentID)
			assert.Equal(t, c.status, row.Status)
			if c.start == nil {
				assert.Nil(t, row.StartTime)
				assert.Nil(t, row.EndTime)
				return
			}
			require.NotNil(t, row.StartTime)
			require.NotNil(t, row.EndTime)
			assert.Equal(t, *c.start, *row.StartTime)
			assert.Equal(t, *c.end, *row.EndTime)
		})
	}
}

func ptr[T any](v T) *T { return &v }
