package dashboard

// ========== DEPARTMENT DASHBOARD ==========

// StatsResponse is the combined response for the manager dashboard endpoint
type StatsResponse struct {
	DepartmentID      string `json:"department_id"`
	TotalEmployees    int64  `json:"total_employees"`
	ActiveEmployees   int64  `json:"active_employees"`
	ScheduledToday    int64  `json:"scheduled_today"`
	OnLeaveToday      int64  `json:"on_leave_today"`
	PendingLeave      int64  `json:"pending_leave_requests"`
	PendingCompOff    int64  `json:"pending_comp_off_requests"`
	PendingOvertime   int64  `json:"pending_overtime_requests"`
	RequiredThisWeek  int    `json:"required_shifts_this_week"`
	WeekdayHolidays   int    `json:"weekday_holidays_this_week"`
}
