package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/jobboard/internal"
	"github.com/DukeRupert/jobboard/internal/auth"
	"github.com/DukeRupert/jobboard/internal/handler"
	"github.com/DukeRupert/jobboard/internal/metrics"
	"github.com/DukeRupert/jobboard/internal/middleware"
	"github.com/DukeRupert/jobboard/internal/repository"
	"github.com/DukeRupert/jobboard/internal/service"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	if err := internal.RunMigrations(db, logger); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := metrics.RegisterDBStats(db, "jobboard"); err != nil {
		return fmt.Errorf("metrics registration failed: %w", err)
	}
	logger.Info("Database ready")

	// Initialize repository
	repo := repository.New(db)

	// Initialize services
	entitlementService := service.NewEntitlementService(repo, logger)
	userService := service.NewUserService(db, repo, entitlementService, logger, service.UserServiceConfig{
		SuperAdminIDs: cfg.AdminUIDs,
	})
	jobService := service.NewJobService(repo, logger)
	promotionService := service.NewPromotionService(db, repo, logger)
	moderationService := service.NewModerationService(repo, logger)
	reportService := service.NewReportService(repo, logger)
	applicationService := service.NewApplicationService(db, repo, logger)

	// Identity tokens
	verifier, err := auth.NewVerifier(auth.VerifierConfig{
		Secret:   cfg.IdentityTokenSecret,
		Issuer:   cfg.IdentityIssuer,
		Audience: cfg.IdentityAudience,
		Leeway:   cfg.IdentityLeeway,
	})
	if err != nil {
		return fmt.Errorf("token verifier initialization failed: %w", err)
	}

	// Initialize middleware
	isSecure := !cfg.IsDevelopment()
	authMw := middleware.NewAuthMiddleware(verifier, userService, logger)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	metricsAuth := middleware.NewOperatorAuth("metrics", cfg.MetricsUsername, cfg.MetricsPassword, logger)

	pushLimiter := middleware.NewRateLimiter(cfg.PushRatePerMinute, cfg.PushRateBurst, 10*time.Minute)
	stopLimiter := make(chan struct{})
	go pushLimiter.Run(stopLimiter)
	defer close(stopLimiter)
	pushLimitMw := middleware.NewRateLimitMiddleware(pushLimiter, logger)

	if cfg.MetricsUsername == "" && cfg.MetricsPassword == "" {
		logger.Warn("Metrics endpoint is unprotected; set METRICS_USERNAME and METRICS_PASSWORD")
	}

	// Create middleware stacks for route groups
	guards := handler.Guards{
		Public:     authMw.WithUser,
		Identity:   middleware.Stack(authMw.WithUser, authMw.RequireIdentity),
		User:       middleware.Stack(authMw.WithUser, authMw.RequireUser),
		Employer:   middleware.Stack(authMw.WithUser, authMw.RequireUser, authMw.RequireEmployer),
		Candidate:  middleware.Stack(authMw.WithUser, authMw.RequireUser, authMw.RequireCandidate),
		Admin:      middleware.Stack(authMw.WithUser, authMw.RequireUser, authMw.RequireAdmin),
		SuperAdmin: middleware.Stack(authMw.WithUser, authMw.RequireUser, authMw.RequireSuperAdmin),
		PushLimit:  pushLimitMw.Limit,
	}

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(userService, logger)
	jobHandler := handler.NewJobHandler(jobService, promotionService, logger)
	adminHandler := handler.NewAdminHandler(moderationService, userService, entitlementService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	applicationHandler := handler.NewApplicationHandler(applicationService, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.Error("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	accountHandler.RegisterRoutes(mux, guards)
	jobHandler.RegisterRoutes(mux, guards)
	adminHandler.RegisterRoutes(mux, guards)
	reportHandler.RegisterRoutes(mux, guards)
	applicationHandler.RegisterRoutes(mux, guards)

	// Unmatched API paths answer in JSON
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, logger)
	})

	root := middleware.Stack(
		loggingMw.Handler,
		metrics.Middleware,
		securityMw.Handler,
	)(mux)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown...")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
