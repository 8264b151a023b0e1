package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/config"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
)

// Handlers bundles the per-domain handlers the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Department   DepartmentHandler
	Employee     EmployeeHandler
	Role         RoleHandler
	Shift        ShiftHandler
	Schedule     ScheduleHandler
	Calendar     CalendarHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	CompOff      CompOffHandler
	Overtime     OvertimeHandler
	Message      MessageHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftwise"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// SSE stream authenticates with a short-lived token in the query
		// string, so it sits outside the Verifier chain.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
					r.Put("/{id}/manager", h.Department.AssignManager)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", h.Role.List)
				r.Get("/{id}", h.Role.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Role.Create)
					r.Put("/{id}", h.Role.Update)
					r.Delete("/{id}", h.Role.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Get("/{id}", h.Schedule.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Schedule.Create)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Delete)
					r.Post("/generate", h.Schedule.Generate)
					r.Get("/validate", h.Schedule.Validate)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/holidays", h.Calendar.Holidays)
				r.Get("/week-info", h.Calendar.WeekInfo)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Put("/{id}/approve", h.Leave.Approve)
					r.Put("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/comp-off", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.CompOff.CreateRequest)
					r.Get("/", h.CompOff.ListRequests)
					r.Get("/{id}", h.CompOff.GetRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Put("/{id}/approve", h.CompOff.Approve)
						r.Put("/{id}/reject", h.CompOff.Reject)
					})
				})

				r.Get("/tracking/{employeeID}", h.CompOff.GetTracking)
				r.Get("/monthly-breakdown/{employeeID}", h.CompOff.MonthlyBreakdown)
				r.Get("/validate-available/{employeeID}", h.CompOff.ValidateAvailable)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Overtime.CreateRequest)
					r.Get("/", h.Overtime.ListRequests)
					r.Get("/{id}", h.Overtime.GetRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Put("/{id}/approve", h.Overtime.Approve)
						r.Put("/{id}/reject", h.Overtime.Reject)
					})
				})

				r.Get("/tracking/{employeeID}", h.Overtime.GetTracking)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Post("/", h.Message.Send)
				r.Get("/", h.Message.List)
				r.Put("/{id}/read", h.Message.MarkAsRead)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/read", h.Notification.MarkAsRead)
				r.Put("/{id}/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
				r.Get("/sse-token", h.Notification.GetSSEToken)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/dashboard/stats", h.Dashboard.Stats)
			})
		})
	})

	return r
}
