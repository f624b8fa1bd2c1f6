package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/fitcore/gym-backend-go/internal/config"
	appHTTP "github.com/fitcore/gym-backend-go/internal/handler/http"
	"github.com/fitcore/gym-backend-go/internal/pkg/cron"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/fitcore/gym-backend-go/internal/pkg/email"
	"github.com/fitcore/gym-backend-go/internal/pkg/jwt"
	"github.com/fitcore/gym-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fitcore/gym-backend-go/internal/service/attendance"
	authService "github.com/fitcore/gym-backend-go/internal/service/auth"
	holidayService "github.com/fitcore/gym-backend-go/internal/service/holiday"
	payrollService "github.com/fitcore/gym-backend-go/internal/service/payroll"
	schedulingService "github.com/fitcore/gym-backend-go/internal/service/scheduling"
	staffService "github.com/fitcore/gym-backend-go/internal/service/staff"
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

	staffRepo := postgresql.NewStaffRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	salesRepo := postgresql.NewBranchSalesRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(staffRepo, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	bookingSvc := schedulingService.NewSchedulingService(db, bookingRepo, staffRepo, subscriptionRepo, attendanceRepo, emailService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(staffRepo, attendanceRepo, bookingRepo, holidayRepo, salesRepo, cfg.Payroll)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Booking:    appHTTP.NewBookingHandler(bookingSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewMembershipJobs(subscriptionRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
