package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
)

// actor is the authenticated caller, as carried by the access-token claims.
type actor struct {
	UserID       string
	UserType     user.UserType
	EmployeeID   string
	DepartmentID string
}

func actorFromRequest(r *http.Request) actor {
	_, claims, _ := jwtauth.FromContext(r.Context())

	var a actor
	if v, ok := claims["user_id"].(string); ok {
		a.UserID = v
	}
	if v, ok := claims["user_type"].(string); ok {
		a.UserType = user.UserType(v)
	}
	if v, ok := claims["employee_id"].(string); ok {
		a.EmployeeID = v
	}
	if v, ok := claims["department_id"].(string); ok {
		a.DepartmentID = v
	}
	return a
}

func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}

// pageParams reads the shared page/limit query parameters. The services
// clamp out-of-range values again, so no validation happens here.
func pageParams(r *http.Request) (page, limit int) {
	return getIntQueryParam(r, "page", 1), getIntQueryParam(r, "limit", 20)
}
