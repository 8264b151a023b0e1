package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/schedule"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler. A daily or weekly hour-cap breach
// answers with a confirmation-required payload carrying the overtime
// breakdown.
func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	out, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.RenderOutcome(w, out, http.StatusCreated, "Schedule created successfully")
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ScheduleHandler.
func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ScheduleFilter{
		DepartmentID: r.URL.Query().Get("department_id"),
		EmployeeID:   r.URL.Query().Get("employee_id"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}
	filter.Page, filter.Limit = pageParams(r)

	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			st := schedule.Status(strings.TrimSpace(s))
			if !st.IsValid() {
				response.HandleError(w, schedule.ErrInvalidStatus)
				return
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}

	// Managers see their department, employees their own rows
	act := actorFromRequest(r)
	switch act.UserType {
	case user.UserTypeManager:
		filter.DepartmentID = act.DepartmentID
	case user.UserTypeEmployee:
		filter.EmployeeID = act.EmployeeID
	}

	results, total, err := h.scheduleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// Update implements ScheduleHandler.
func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated successfully", result)
}

// Delete implements ScheduleHandler.
func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule cancelled successfully", nil)
}

// Generate implements ScheduleHandler. When rows already exist in the
// range and regenerate is false, the service answers with a
// confirmation-required payload carrying the existing count.
func (h *scheduleHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req schedule.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	act := actorFromRequest(r)
	if act.UserType == user.UserTypeManager && req.DepartmentID != act.DepartmentID {
		response.Forbidden(w, "Managers can only generate schedules for their own department")
		return
	}

	out, err := h.scheduleService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.RenderOutcome(w, out, http.StatusCreated, "Schedules generated successfully")
}

type scheduleCheck struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

type scheduleValidation struct {
	WeeklyQuota scheduleCheck `json:"weekly_quota"`
	Consecutive scheduleCheck `json:"consecutive"`
}

// Validate runs the manual-scheduling validators for one employee and date
// without writing anything.
func (h *scheduleHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	date := r.URL.Query().Get("date")
	excludeID := r.URL.Query().Get("exclude_id")

	if employeeID == "" || date == "" {
		response.BadRequest(w, "employee_id and date are required", nil)
		return
	}

	var result scheduleValidation

	ok, reason, err := h.scheduleService.ValidateWeeklyQuota(r.Context(), employeeID, date, excludeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	result.WeeklyQuota = scheduleCheck{OK: ok, Reason: reason}

	ok, reason, err = h.scheduleService.ValidateConsecutive(r.Context(), employeeID, date, excludeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	result.Consecutive = scheduleCheck{OK: ok, Reason: reason}

	response.Success(w, result)
}
