package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgetbuddy-api/internal/config"
	"budgetbuddy-api/internal/database"
	"budgetbuddy-api/internal/handlers"
	custommw "budgetbuddy-api/internal/middleware"
	"budgetbuddy-api/internal/repositories"
	"budgetbuddy-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	goalRepo := repositories.NewSavingsGoalRepository(db.DB)
	reminderRepo := repositories.NewReminderRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, passwordService, tokenService, metrics, logger)
	spendingService := services.NewSpendingService()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	notificationService := services.NewNotificationService(cfg.Notification, breaker, metrics, logger)
	alertService := services.NewBudgetAlertService(spendingService, notificationService, metrics, logger, cfg.Notification.AppURL)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userRepo)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, budgetRepo, userRepo, alertService, metrics)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo, metrics)
	goalHandler := handlers.NewSavingsGoalHandler(goalRepo)
	reminderHandler := handlers.NewReminderHandler(reminderRepo)
	alertHandler := handlers.NewAlertHandler(budgetRepo, transactionRepo, userRepo, alertService)
	analyticsHandler := handlers.NewAnalyticsHandler(transactionRepo, spendingService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := custommw.RequireAuth(tokenService)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout, requireAuth)
	auth.GET("/me", authHandler.GetProfile, requireAuth)

	transactions := api.Group("/transactions", requireAuth)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := api.Group("/budgets", requireAuth)
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := api.Group("/goals", requireAuth)
	goals.POST("", goalHandler.CreateSavingsGoal)
	goals.GET("", goalHandler.ListSavingsGoals)
	goals.GET("/:id", goalHandler.GetSavingsGoal)
	goals.PUT("/:id", goalHandler.UpdateSavingsGoal)
	goals.POST("/:id/contribute", goalHandler.Contribute)
	goals.DELETE("/:id", goalHandler.DeleteSavingsGoal)

	reminders := api.Group("/reminders", requireAuth)
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.GET("", reminderHandler.ListReminders)
	reminders.GET("/:id", reminderHandler.GetReminder)
	reminders.PUT("/:id", reminderHandler.UpdateReminder)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)

	alerts := api.Group("/alerts", requireAuth)
	alerts.GET("/budget", alertHandler.GetBudgetAlert)
	alerts.POST("/budget/notify", alertHandler.NotifyBudgetAlert)

	api.GET("/analytics/summary", analyticsHandler.GetSummary, requireAuth)

	if cfg.IsDevelopment() {
		sampleDataService := services.NewSampleDataService(userRepo, transactionRepo, budgetRepo, goalRepo, reminderRepo, passwordService, logger)
		devHandler := handlers.NewDevHandler(sampleDataService)
		api.POST("/dev/seed", devHandler.SeedSampleData)
		logger.Warn("development seeding endpoint enabled", "path", "/api/v1/dev/seed")
	}

	// Periodic cleanup of expired refresh tokens
	cleanupTicker := time.NewTicker(1 * time.Hour)
	defer cleanupTicker.Stop()
	go func() {
		for range cleanupTicker.C {
			if err := db.CleanupExpiredTokens(); err != nil {
				logger.Error("refresh token cleanup failed", "error", err)
			}
		}
	}()

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	go func() {
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
