package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"merchant-dashboard/internal/client"
	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/database"
	"merchant-dashboard/internal/handlers"
	"merchant-dashboard/internal/middleware"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/repositories"
	"merchant-dashboard/internal/services"
	"merchant-dashboard/internal/store"
)

func serveCmd() *cobra.Command {
	var withMock bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start polling the merchant API and serve the dashboard API",
		Long: `Start the dashboard.

Examples:
  dashboard serve
  dashboard serve --with-mock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, config.Load(), withMock)
		},
	}

	cmd.Flags().BoolVar(&withMock, "with-mock", false, "also start the upstream simulator on MOCKAPI_PORT")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, withMock bool) error {
	logger := newLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	var snapshots *store.Store
	if cfg.Cache.Enabled {
		snapshots, err = store.New(cfg.Cache.Path)
		if err != nil {
			return fmt.Errorf("failed to open snapshot cache: %w", err)
		}
		defer snapshots.Close()
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	breakerCfg := services.DefaultCircuitBreakerConfig()
	breakerCfg.MaxFailures = cfg.Upstream.BreakerMaxFailures
	breakerCfg.ResetTimeout = cfg.Upstream.BreakerReset
	breakerCfg.OnStateChange = func(state models.CircuitBreakerState) {
		metrics.RecordGauge(services.MetricBreakerState, float64(state), map[string]string{"service": "upstream"})
		logger.Warn("upstream circuit breaker changed state", "state", state.String())
	}
	breaker := services.NewCircuitBreaker(breakerCfg)

	api := client.New(cfg.Upstream,
		client.WithBreaker(breaker),
		client.WithMetrics(metrics),
		client.WithLogger(logger),
	)

	mutationLogs := services.NewMutationLogService(repositories.NewMutationLogRepository(db.DB), logger)
	opts := services.DashboardOptions{
		Interval:        cfg.Polling.Interval,
		RequestTimeout:  cfg.Polling.RequestTimeout,
		PageSize:        cfg.Dashboard.MerchantPageSize,
		Store:           snapshots,
		Metrics:         metrics,
		MutationLogs:    mutationLogs,
		Logger:          logger,
		Locale:          cfg.Dashboard.Locale,
		DefaultCurrency: cfg.Dashboard.DefaultCurrency,
	}

	merchants := services.NewMerchantDashboard(api, opts)
	key := models.DefaultTransactionKey(cfg.Dashboard.DefaultMerchantID)
	if cfg.Dashboard.TransactionSize > 0 {
		key.Size = cfg.Dashboard.TransactionSize
	}
	transactions := services.NewTransactionDashboard(api, key, opts)

	if withMock {
		go func() {
			if err := startMockAPI(ctx, cfg, logger); err != nil {
				logger.Error("upstream simulator stopped", "error", err)
			}
		}()
	}

	if err := merchants.Start(); err != nil {
		return fmt.Errorf("failed to start merchant polling: %w", err)
	}
	defer merchants.Stop()
	if err := transactions.Start(); err != nil {
		return fmt.Errorf("failed to start transaction polling: %w", err)
	}
	defer transactions.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, 0)
	go limiter.Run(ctx)

	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(limiter.Middleware())

	var cache handlers.Pinger
	if snapshots != nil {
		cache = snapshots
	}
	handlers.RegisterRoutes(e, handlers.Handlers{
		Merchants:    handlers.NewMerchantHandler(merchants),
		Transactions: handlers.NewTransactionHandler(transactions),
		Audit:        handlers.NewAuditHandler(mutationLogs),
		Health:       handlers.NewHealthCheckHandler(handlers.PingFunc(db.HealthCheck), cache, breaker),
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening",
			"addr", addr,
			"upstream", cfg.Upstream.BaseURL,
			"poll_interval", cfg.Polling.Interval.String(),
			"merchant_id", key.MerchantID,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
