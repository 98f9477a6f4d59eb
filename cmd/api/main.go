package main

import (
	"fmt"
	"net/http"

	"github.com/shopvui/backoffice-go/internal/config"
	appHTTP "github.com/shopvui/backoffice-go/internal/handler/http"
	"github.com/shopvui/backoffice-go/internal/pkg/cron"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
	"github.com/shopvui/backoffice-go/internal/pkg/export"
	"github.com/shopvui/backoffice-go/internal/pkg/jwt"
	"github.com/shopvui/backoffice-go/internal/repository/postgresql"
	masterService "github.com/shopvui/backoffice-go/internal/service/master"
	payrollService "github.com/shopvui/backoffice-go/internal/service/payroll"
	scheduleService "github.com/shopvui/backoffice-go/internal/service/schedule"
	timekeepingService "github.com/shopvui/backoffice-go/internal/service/timekeeping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	timekeepingRepo := postgresql.NewTimekeepingRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	pdfExporter := export.NewPDFExporter()

	masterSvc := masterService.NewMasterService(staffRepo, shiftRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, timekeepingRepo, staffRepo, shiftRepo)
	timekeepingSvc := timekeepingService.NewTimekeepingService(timekeepingRepo, scheduleRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, staffRepo, shiftRepo, timekeepingRepo, pdfExporter)

	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	timekeepingHandler := appHTTP.NewTimekeepingHandler(timekeepingSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	cron.NewTimekeepingJobs(timekeepingRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		masterHandler,
		scheduleHandler,
		timekeepingHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
