package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/anshumat/payroll-management/internal/auth"
	"github.com/anshumat/payroll-management/internal/dashboard"
	"github.com/anshumat/payroll-management/internal/expense"
	"github.com/anshumat/payroll-management/internal/payroll"
	"github.com/anshumat/payroll-management/internal/transport/middleware"
	"github.com/anshumat/payroll-management/internal/transport/swagger"
	"github.com/anshumat/payroll-management/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	payrollHandler *payroll.Handler,
	expenseHandler *expense.Handler,
	dashboardHandler *dashboard.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/signup", authHandler.Signup)
		})

		// Public category list (no auth required)
		r.Get("/expense-categories", expenseHandler.ListCategories)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// Current user and employee directory
			pr.Get("/users/me", userHandler.GetCurrentUser)
			pr.Get("/employees", userHandler.ListEmployees)

			// Salary slip routes; service layer enforces the admin rules
			pr.Route("/salary-slips", func(sr chi.Router) {
				sr.Post("/", payrollHandler.CreateSlip)
				sr.Get("/", payrollHandler.ListSlips)
				sr.Put("/{id}", payrollHandler.UpdateSlip)
			})

			// Expense routes
			pr.Route("/expenses", func(er chi.Router) {
				er.Post("/", expenseHandler.SubmitExpense)
				er.Get("/", expenseHandler.ListExpenses)
				er.Patch("/{id}/status", expenseHandler.DecideExpense)
			})

			// Dashboard
			pr.Get("/dashboard/stats", dashboardHandler.GetStats)
		})
	})
}
