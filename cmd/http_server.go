package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/auth"
	"github.com/anshumat/payroll-management/internal/core/events"
	"github.com/anshumat/payroll-management/internal/dashboard"
	"github.com/anshumat/payroll-management/internal/expense"
	expensePostgres "github.com/anshumat/payroll-management/internal/expense/postgres"
	"github.com/anshumat/payroll-management/internal/payroll"
	payrollPostgres "github.com/anshumat/payroll-management/internal/payroll/postgres"
	"github.com/anshumat/payroll-management/internal/transport/rest"
	"github.com/anshumat/payroll-management/internal/user"
	userPostgres "github.com/anshumat/payroll-management/internal/user/postgres"
	"github.com/anshumat/payroll-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config           *internal.Config
	DB               *sqlx.DB
	Router           *chi.Mux
	AuthHandler      *auth.Handler
	UserHandler      *user.Handler
	PayrollHandler   *payroll.Handler
	ExpenseHandler   *expense.Handler
	DashboardHandler *dashboard.Handler
	Logger           *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.UserHandler,
		deps.PayrollHandler,
		deps.ExpenseHandler,
		deps.DashboardHandler,
		deps.Config.Server.AllowedOrigins,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)
	registerEventSubscribers(eventBus, appLogger)

	userRepo := userPostgres.NewUserRepository(gormDB)
	payrollRepo := payrollPostgres.NewSalarySlipRepository(gormDB)
	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenDuration)
	authService := auth.NewService(userRepo, tokenGen, config.Security.BCryptCost)
	userService := user.NewService(userRepo, appLogger)
	payrollService := payroll.NewService(payrollRepo, userService, eventBus, appLogger)
	expenseService := expense.NewService(expenseRepo, eventBus, appLogger)
	dashboardService := dashboard.NewService(payrollService, expenseService, userService, appLogger)

	return &Dependencies{
		Config:           config,
		Logger:           appLogger,
		DB:               db,
		Router:           chi.NewRouter(),
		AuthHandler:      auth.NewHandler(authService),
		UserHandler:      user.NewHandler(userService),
		PayrollHandler:   payroll.NewHandler(payrollService),
		ExpenseHandler:   expense.NewHandler(expenseService),
		DashboardHandler: dashboard.NewHandler(dashboardService),
	}, nil
}

// registerEventSubscribers attaches the default audit subscribers. More
// subscribers (notifications, exports) hook in here.
func registerEventSubscribers(bus *events.EventBus, lg *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		lg.Info("domain event",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeSalarySlipIssued, audit)
	bus.Subscribe(events.EventTypeExpenseSubmitted, audit)
	bus.Subscribe(events.EventTypeExpenseDecided, audit)
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the existing connection so the ORM and the raw handle share
// one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
