package main

import (
	"fmt"
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/config"
	appHTTP "github.com/forgetrack/forgetrack-backend-go/internal/handler/http"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/jwt"
	"github.com/forgetrack/forgetrack-backend-go/internal/repository/postgresql"
	authService "github.com/forgetrack/forgetrack-backend-go/internal/service/auth"
	catalogService "github.com/forgetrack/forgetrack-backend-go/internal/service/catalog"
	employeeService "github.com/forgetrack/forgetrack-backend-go/internal/service/employee"
	ledgerService "github.com/forgetrack/forgetrack-backend-go/internal/service/ledger"
	salaryService "github.com/forgetrack/forgetrack-backend-go/internal/service/salary"
	transportService "github.com/forgetrack/forgetrack-backend-go/internal/service/transport"
	worklogService "github.com/forgetrack/forgetrack-backend-go/internal/service/worklog"
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

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	transporterRepo := postgresql.NewTransporterLogRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, JWTService, tokenRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	catalogSvc := catalogService.NewCatalogService(catalogRepo)
	workLogSvc := worklogService.NewWorkLogService(workLogRepo, employeeRepo)
	transporterSvc := transportService.NewTransporterLogService(transporterRepo, employeeRepo)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(employeeRepo, workLogRepo, transporterRepo, catalogRepo, ledgerSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)
	workLogHandler := appHTTP.NewWorkLogHandler(workLogSvc)
	transporterHandler := appHTTP.NewTransporterLogHandler(transporterSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		catalogHandler,
		workLogHandler,
		transporterHandler,
		ledgerHandler,
		salaryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
