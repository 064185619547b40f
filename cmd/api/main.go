package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/meridian-erp/erp-backend-go/internal/config"
	appHTTP "github.com/meridian-erp/erp-backend-go/internal/handler/http"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/cron"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/meridian-erp/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/meridian-erp/erp-backend-go/internal/service/attendance"
	compensationService "github.com/meridian-erp/erp-backend-go/internal/service/compensation"
	employeeService "github.com/meridian-erp/erp-backend-go/internal/service/employee"
	"github.com/meridian-erp/erp-backend-go/internal/service/export"
	holidayService "github.com/meridian-erp/erp-backend-go/internal/service/holiday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	exportSvc := export.NewExportService()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	compensationSvc := compensationService.NewCompensationService(
		db,
		compensationRepo,
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		exportSvc,
	)

	scheduler := cron.NewScheduler()
	cron.NewCompensationJobs(compensationSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	compensationHandler := appHTTP.NewCompensationHandler(compensationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.AllowedOrigins,
		employeeHandler,
		attendanceHandler,
		holidayHandler,
		compensationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
