package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jatansg/sgfoodcourt/api/routes"
	"github.com/jatansg/sgfoodcourt/internal/catalog"
	"github.com/jatansg/sgfoodcourt/internal/checkout"
	"github.com/jatansg/sgfoodcourt/internal/housekeeping"
	"github.com/jatansg/sgfoodcourt/internal/orders"
	"github.com/jatansg/sgfoodcourt/internal/session"
	"github.com/jatansg/sgfoodcourt/pkg/config"
	"github.com/jatansg/sgfoodcourt/pkg/instance"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
	"github.com/jatansg/sgfoodcourt/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	cat, err := loadCatalog(cfg.Engine.CatalogPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}
	if cfg.Engine.CatalogPath == "" && !cfg.App.IsDev() {
		logg.Warn(context.Background(), "serving the built-in demo catalog outside dev")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	jobMetrics := metrics.NewJobMetrics(reg)
	sessionMetrics := metrics.NewSessionMetrics(reg)

	tracker := orders.NewTracker(orders.TrackerParams{
		NumberPrefix: cfg.Engine.OrderNumberPrefix,
		Observer:     orders.MetricsObserver(metrics.NewOrderMetrics(reg)),
	})

	registry := session.NewRegistry(session.RegistryParams{
		TaxRate: cfg.Engine.TaxRate,
		IdleTTL: cfg.Session.IdleTTL,
	})
	sessions, err := session.NewService(cat, registry, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(registry, tracker, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	sweepJob, err := housekeeping.NewSessionSweepJob(housekeeping.SessionSweepJobParams{
		Logger:   logg,
		Sessions: registry,
		Metrics:  sessionMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session sweep job", err)
		os.Exit(1)
	}
	staleJob, err := housekeeping.NewStaleOrderJob(housekeeping.StaleOrderJobParams{
		Logger: logg,
		Orders: tracker,
		After:  cfg.Engine.StaleOrderAfter,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stale order job", err)
		os.Exit(1)
	}
	jobs, err := housekeeping.NewRegistry(sweepJob, staleJob)
	if err != nil {
		logg.Error(context.Background(), "failed to register housekeeping jobs", err)
		os.Exit(1)
	}
	housekeeper, err := housekeeping.NewService(housekeeping.ServiceParams{
		Logger:   logg,
		Registry: jobs,
		Metrics:  jobMetrics,
		Interval: cfg.Session.SweepInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create housekeeping service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.ID(),
		"stalls":   len(cat.Stalls()),
	})

	go func() {
		if err := housekeeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "housekeeping stopped unexpectedly", err)
		}
	}()

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:         cfg,
			Logger:         logg,
			Catalog:        cat,
			Sessions:       sessions,
			Checkout:       checkoutService,
			Orders:         tracker,
			HTTPMetrics:    metrics.NewHTTPMetrics(reg),
			MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "api server shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "api server shutdown failed", err)
			os.Exit(1)
		}
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Demo(), nil
	}
	return catalog.LoadFile(path)
}
