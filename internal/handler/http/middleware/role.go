package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

func userTypeFromContext(r *http.Request) (user.UserType, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userType, ok := claims["user_type"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.UserType(userType), nil
}

// AdminOnly restricts the route to admin users.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, err := userTypeFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if userType != user.UserTypeAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOnly restricts the route to managers and admins.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, err := userTypeFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if userType != user.UserTypeManager && userType != user.UserTypeAdmin {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
