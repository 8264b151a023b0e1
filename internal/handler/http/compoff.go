package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/compoff"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type CompOffHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetTracking(w http.ResponseWriter, r *http.Request)
	MonthlyBreakdown(w http.ResponseWriter, r *http.Request)
	ValidateAvailable(w http.ResponseWriter, r *http.Request)
}

type compOffHandlerImpl struct {
	compOffService compoff.CompOffService
}

func NewCompOffHandler(compOffService compoff.CompOffService) CompOffHandler {
	return &compOffHandlerImpl{compOffService: compOffService}
}

// CreateRequest implements CompOffHandler.
func (h *compOffHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req compoff.CreateCompOffRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	act := actorFromRequest(r)
	if act.UserType == user.UserTypeEmployee {
		req.EmployeeID = act.EmployeeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.compOffService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comp-off request submitted successfully", result)
}

// GetRequest implements CompOffHandler.
func (h *compOffHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	result, err := h.compOffService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRequests implements CompOffHandler.
func (h *compOffHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := compoff.CompOffRequestFilter{
		EmployeeID:   r.URL.Query().Get("employee_id"),
		DepartmentID: r.URL.Query().Get("department_id"),
		Status:       r.URL.Query().Get("status"),
	}
	filter.Page, filter.Limit = pageParams(r)

	act := actorFromRequest(r)
	switch act.UserType {
	case user.UserTypeManager:
		filter.DepartmentID = act.DepartmentID
	case user.UserTypeEmployee:
		filter.EmployeeID = act.EmployeeID
	}

	results, total, err := h.compOffService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// Approve implements CompOffHandler. Approval earns the day: the schedule
// row, tracking bump and earned detail land in one transaction.
func (h *compOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.compOffService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comp-off request approved", result)
}

// Reject implements CompOffHandler.
func (h *compOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.compOffService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comp-off request rejected", result)
}

// GetTracking implements CompOffHandler.
func (h *compOffHandlerImpl) GetTracking(w http.ResponseWriter, r *http.Request) {
	result, err := h.compOffService.GetTracking(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyBreakdown implements CompOffHandler.
func (h *compOffHandlerImpl) MonthlyBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.compOffService.MonthlyBreakdown(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ValidateAvailable implements CompOffHandler. Answers whether the balance
// is usable on the given date under the monthly-expiry rule.
func (h *compOffHandlerImpl) ValidateAvailable(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	result, err := h.compOffService.ValidateAvailable(r.Context(), chi.URLParam(r, "employeeID"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
