package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"inkwell/internal/common/pagination"
	"inkwell/internal/config"
	pgRepo "inkwell/internal/infra/adapter/persistence/postgres"
	"inkwell/internal/infra/db"
	"inkwell/internal/observability/logging"
	"inkwell/internal/observability/tracing"
	"inkwell/internal/resilience/circuitbreaker"

	artUC "inkwell/internal/usecase/article"
	authorUC "inkwell/internal/usecase/author"

	hhttp "inkwell/internal/handler/http"
	harticle "inkwell/internal/handler/http/article"
	"inkwell/internal/handler/http/auth"
	hauthor "inkwell/internal/handler/http/author"
	"inkwell/internal/handler/http/middleware"
	"inkwell/internal/handler/http/requestid"

	_ "inkwell/docs" // swagger docs
)

// @title           Inkwell API
// @version         1.0
// @description     REST API for the Inkwell publishing platform: article
// @description     authoring, full-text search, and the author directory.

// @contact.name   API Support
// @contact.url    https://github.com/inkwell/inkwell
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by the identity provider, sent as "Bearer {token}".

func main() {
	logger := initLogger()
	validateSessionSecret(logger)
	applySecurityConfig(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler, limiter := setupServer(logger, database, version)

	runServer(logger, handler, limiter, version)
}

// initLogger installs the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateSessionSecret refuses to start with a missing or weak session
// signing key. Every protected endpoint depends on it.
func validateSessionSecret(logger *slog.Logger) {
	if err := auth.ValidateSessionSecret(); err != nil {
		logger.Error("session secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// applySecurityConfig loads the optional security config file named by
// SECURITY_CONFIG. Absent the file, the compiled-in defaults apply.
func applySecurityConfig(logger *slog.Logger) {
	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		return
	}

	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if endpoints := cfg.GetPublicEndpoints(); len(endpoints) > 0 {
		auth.PublicEndpoints = endpoints
	}
	logger.Info("security configuration loaded",
		slog.String("path", path),
		slog.Int("public_endpoints", len(auth.PublicEndpoints)))
}

// initDatabase opens the store connection pool and bootstraps the schema.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.EnsureSchema(database); err != nil {
		logger.Error("failed to ensure schema", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes, and the middleware
// chain, returning the root handler and the rate limiter (whose cleanup
// loop the caller owns).
func setupServer(logger *slog.Logger, database *sql.DB, version string) (http.Handler, *middleware.RateLimiter) {
	breaker := circuitbreaker.Wrap(database)

	articles := pgRepo.NewArticleRepo(breaker)
	users := pgRepo.NewUserRepo(breaker)

	artSvc := &artUC.Service{Repo: articles, Users: users}
	authorSvc := &authorUC.Service{Repo: articles, Users: users}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()

	// Public endpoints: the session guard lets these through.
	mux.Handle("GET    /healthz", &hhttp.HealthHandler{
		DB:      database,
		Breaker: breaker,
		Version: version,
	})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, artSvc, paginationCfg)
	hauthor.Register(mux, authorSvc, paginationCfg)

	limiter := newRateLimiter(logger)

	handler := hhttp.Chain(auth.Guard(mux),
		requestid.Middleware,
		limiter.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		tracing.Middleware,
		hhttp.LimitRequestBody(1<<20), // 1MB request bodies
		hhttp.MetricsMiddleware,
		hhttp.Timeout(30*time.Second),
	)

	return handler, limiter
}

// newRateLimiter builds the per-client limiter from RATE_LIMIT_RPS and
// RATE_LIMIT_BURST, with defaults generous enough for interactive use.
func newRateLimiter(logger *slog.Logger) *middleware.RateLimiter {
	perSecond := 50.0
	burst := 100

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			perSecond = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			burst = parsed
		}
	}

	logger.Info("rate limiting initialized",
		slog.Float64("requests_per_second", perSecond),
		slog.Int("burst", burst))
	return middleware.NewRateLimiter(perSecond, burst)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, limiter *middleware.RateLimiter, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan struct{})
	go limiter.CleanupLoop(stop)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	close(stop)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
