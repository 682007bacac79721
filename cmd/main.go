package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/currency-watchlist/internal/allowlist"
	"github.com/sbilibin2017/currency-watchlist/internal/handlers"
	"github.com/sbilibin2017/currency-watchlist/internal/logger"
	"github.com/sbilibin2017/currency-watchlist/internal/metrics"
	"github.com/sbilibin2017/currency-watchlist/internal/middlewares"
	"github.com/sbilibin2017/currency-watchlist/internal/repositories"
	"github.com/sbilibin2017/currency-watchlist/internal/services"
	"github.com/sbilibin2017/currency-watchlist/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the settings read from the environment.
type config struct {
	appHost         string
	appPort         string
	logLevel        string
	dbName          string
	dbReset         bool
	allowlistPath   string
	shutdownTimeout time.Duration
}

// @title currency-watchlist API
// @version 1.0.0
// @description Service keeping a watchlist of currencies and their manually set rates
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, allow-list and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	shutdownSecond, err := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT_SECOND", "10"))
	if err != nil {
		return cfg, fmt.Errorf("SHUTDOWN_TIMEOUT_SECOND: %w", err)
	}
	cfg.shutdownTimeout = time.Duration(shutdownSecond) * time.Second

	// SQLite config
	cfg.dbName = getEnv("DB_NAME", "watchlist.db")
	if cfg.dbReset, err = strconv.ParseBool(getEnv("DB_RESET", "false")); err != nil {
		return cfg, fmt.Errorf("DB_RESET: %w", err)
	}

	// Allow-list config, empty means the built-in list
	cfg.allowlistPath = getEnv("ALLOWLIST_PATH", "")

	return cfg, nil
}

// run initializes the logger, database, allow-list and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Open SQLite and apply migrations
	log.Infof("Opening SQLite database: %s", cfg.dbName)
	db, err := storage.Open(ctx, cfg.dbName)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.dbReset {
		log.Warn("DB_RESET is set, dropping existing watchlist data")
	}
	if err := storage.Migrate(ctx, db, cfg.dbReset, log); err != nil {
		return err
	}

	// Load allow-list
	allowed, err := allowlist.Load(cfg.allowlistPath)
	if err != nil {
		return err
	}
	log.Infof("Allow-list loaded with %d currencies", allowed.Len())

	// Initialize repositories
	currencyReadRepo := repositories.NewCurrencyReadRepository(db, middlewares.GetTxFromContext)
	currencyWriteRepo := repositories.NewCurrencyWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	watchlistService := services.NewWatchlistService(allowed, currencyReadRepo, currencyWriteRepo)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: newRouter(db, watchlistService, metrics.New()),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires handlers and middleware. Mutating routes run inside a
// transaction that is committed before the response is sent.
func newRouter(db *sqlx.DB, svc *services.WatchlistService, m *metrics.HTTPMetrics) http.Handler {
	// Initialize handlers
	listCurrenciesHandler := handlers.NewListCurrenciesHandler(svc)
	getCurrencyHandler := handlers.NewGetCurrencyHandler(svc)
	addCurrencyHandler := handlers.NewAddCurrencyHandler(svc)
	setRateHandler := handlers.NewSetRateHandler(svc)
	removeCurrencyHandler := handlers.NewRemoveCurrencyHandler(svc)
	allowedCurrenciesHandler := handlers.NewListAllowedCurrenciesHandler(svc)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(m))

	// Read routes
	r.Get("/currencies", listCurrenciesHandler)
	r.Get("/currencies/{code}", getCurrencyHandler)
	r.Get("/allowed-currencies", allowedCurrenciesHandler)

	// Write routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/currencies", addCurrencyHandler)
		r.Put("/currencies/{code}", setRateHandler)
		r.Delete("/currencies/{code}", removeCurrencyHandler)
	})

	// Operational routes
	r.Get("/healthz", healthHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
