package http

import (
	"log/slog"
	"os"

	"github.com/forgetrack/forgetrack-backend-go/internal/config"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/user"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/middleware"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	catalogHandler CatalogHandler,
	workLogHandler WorkLogHandler,
	transporterHandler TransporterLogHandler,
	ledgerHandler LedgerHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "forgetrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Worker portal
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleWorker, user.RoleAdmin))
				r.Post("/work-logs", workLogHandler.Create)
				r.Get("/work-logs/my", workLogHandler.ListMine)
				r.Get("/salary/my", salaryHandler.GetMySalary)
			})

			// Transporter portal
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleTransporter, user.RoleAdmin))
				r.Post("/transporter-logs", transporterHandler.Create)
				r.Get("/transporter-logs/my", transporterHandler.ListMine)
			})

			// Admin portal
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/auth/register", authHandler.RegisterUser)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)

					r.Get("/{employeeId}/work-logs", workLogHandler.ListByEmployeeMonth)
					r.Get("/{employeeId}/transporter-logs", transporterHandler.ListByEmployeeMonth)
					r.Get("/{employeeId}/salary", salaryHandler.GetEmployeeSalary)
					r.Get("/{employeeId}/upads", ledgerHandler.ListUpads)
					r.Get("/{employeeId}/loans", ledgerHandler.ListLoans)
					r.Get("/{employeeId}/loan-summary", ledgerHandler.LoanSummary)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", catalogHandler.ListProducts)
					r.Post("/", catalogHandler.CreateProduct)
					r.Put("/{id}", catalogHandler.UpdateProduct)
					r.Delete("/{id}", catalogHandler.DeleteProduct)
				})

				r.Route("/job-rates", func(r chi.Router) {
					r.Get("/", catalogHandler.ListJobRates)
					r.Post("/", catalogHandler.CreateJobRate)
					r.Put("/{id}", catalogHandler.UpdateJobRate)
					r.Delete("/{id}", catalogHandler.DeleteJobRate)
				})

				r.Route("/work-logs", func(r chi.Router) {
					r.Get("/", workLogHandler.ListByDate)
					r.Get("/{id}", workLogHandler.GetByID)
					r.Put("/{id}", workLogHandler.Update)
					r.Delete("/{id}", workLogHandler.Delete)
				})

				r.Route("/transporter-logs", func(r chi.Router) {
					r.Get("/", transporterHandler.ListByDate)
					r.Get("/{id}", transporterHandler.GetByID)
					r.Put("/{id}", transporterHandler.Update)
					r.Delete("/{id}", transporterHandler.Delete)
				})

				r.Route("/upads", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateUpad)
					r.Delete("/{id}", ledgerHandler.DeleteUpad)
				})

				r.Route("/loans", func(r chi.Router) {
					r.Post("/", ledgerHandler.CreateLoan)
					r.Get("/{id}", ledgerHandler.GetLoan)
					r.Patch("/{id}/status", ledgerHandler.UpdateLoanStatus)
					r.Post("/{id}/transactions", ledgerHandler.CreateLoanTransaction)
					r.Get("/{id}/transactions", ledgerHandler.ListLoanTransactions)
				})
			})
		})
	})
	return r
}
