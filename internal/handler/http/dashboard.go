package http

import (
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler. Managers get their own department;
// admins pick one with the department_id query parameter.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")

	act := actorFromRequest(r)
	if act.UserType == user.UserTypeManager {
		departmentID = act.DepartmentID
	}
	if departmentID == "" {
		response.BadRequest(w, "department_id is required", nil)
		return
	}

	stats, err := h.dashboardService.GetStats(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
