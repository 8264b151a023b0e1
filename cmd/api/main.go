package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/config"
	appHTTP "github.com/shiftwise/shiftwise-backend-go/internal/handler/http"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/calendar"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/cron"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/email"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/sse"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/shiftwise-backend-go/internal/service/attendance"
	serviceAuth "github.com/shiftwise/shiftwise-backend-go/internal/service/auth"
	compOffService "github.com/shiftwise/shiftwise-backend-go/internal/service/compoff"
	dashboardService "github.com/shiftwise/shiftwise-backend-go/internal/service/dashboard"
	departmentService "github.com/shiftwise/shiftwise-backend-go/internal/service/department"
	employeeService "github.com/shiftwise/shiftwise-backend-go/internal/service/employee"
	leaveService "github.com/shiftwise/shiftwise-backend-go/internal/service/leave"
	messageService "github.com/shiftwise/shiftwise-backend-go/internal/service/message"
	notificationService "github.com/shiftwise/shiftwise-backend-go/internal/service/notification"
	overtimeService "github.com/shiftwise/shiftwise-backend-go/internal/service/overtime"
	roleService "github.com/shiftwise/shiftwise-backend-go/internal/service/role"
	scheduleService "github.com/shiftwise/shiftwise-backend-go/internal/service/schedule"
	shiftService "github.com/shiftwise/shiftwise-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	managerRepo := postgresql.NewManagerRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	compOffRequestRepo := postgresql.NewCompOffRequestRepository(db)
	compOffTrackingRepo := postgresql.NewCompOffTrackingRepository(db)
	compOffDetailRepo := postgresql.NewCompOffDetailRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	overtimeTrackingRepo := postgresql.NewOvertimeTrackingRepository(db)
	checkInOutRepo := postgresql.NewCheckInOutRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	oracle := calendar.NewJapan()
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notifSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})

	authSvc := serviceAuth.NewAuthService(db, userRepo, employeeRepo, JWTService, JWTRepository)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, managerRepo, employeeRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, roleRepo)
	roleSvc := roleService.NewRoleService(roleRepo, departmentRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, roleRepo)
	scheduleSvc := scheduleService.NewScheduleService(
		db,
		scheduleRepo,
		employeeRepo,
		shiftRepo,
		roleRepo,
		leaveRequestRepo,
		overtimeRequestRepo,
		overtimeTrackingRepo,
		managerRepo,
		departmentRepo,
		oracle,
		notifSvc,
		emailService,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		checkInOutRepo,
		attendanceRepo,
		scheduleRepo,
		employeeRepo,
		roleRepo,
		overtimeRequestRepo,
		overtimeTrackingRepo,
	)
	compOffSvc := compOffService.NewCompOffService(
		db,
		compOffRequestRepo,
		compOffTrackingRepo,
		compOffDetailRepo,
		scheduleRepo,
		employeeRepo,
		shiftRepo,
		notifSvc,
		emailService,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, scheduleRepo, employeeRepo, compOffSvc, notifSvc, emailService)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRequestRepo, overtimeTrackingRepo, employeeRepo, notifSvc, emailService)
	messageSvc := messageService.NewMessageService(messageRepo, userRepo, notifSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, oracle)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Role:         appHTTP.NewRoleHandler(roleSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Calendar:     appHTTP.NewCalendarHandler(oracle, scheduleSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		CompOff:      appHTTP.NewCompOffHandler(compOffSvc),
		Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
		Message:      appHTTP.NewMessageHandler(messageSvc),
		Notification: appHTTP.NewNotificationHandler(notifSvc, JWTService),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewScheduleJobs(scheduleRepo, compOffSvc).RegisterJobs(scheduler)
	cron.NewAttendanceJobs(checkInOutRepo, attendanceRepo, scheduleRepo, employeeRepo, notifSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}

	scheduler.Stop()
	notifSvc.Stop()
}
