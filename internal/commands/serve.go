package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"spend-insights/internal/handlers"
	"spend-insights/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := newApp(cfg, true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, a)
		},
	}
}

// runServe serves the API until ctx is done, then shuts down gracefully.
func runServe(ctx context.Context, a *app) error {
	if removed, err := a.analysis.PruneHistory(ctx, a.cfg.Database.HistoryRetention); err != nil {
		slog.Warn("failed to prune analysis history", "error", err)
	} else if removed > 0 {
		slog.Info("analysis history pruned", "removed", removed)
	}

	limiter := middleware.NewRateLimiter(a.cfg.Security.RateLimitPerSecond, a.cfg.Security.RateLimitBurst)
	e := newServer(a, limiter)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := net.JoinHostPort(a.cfg.Server.Host, a.cfg.Server.Port)
		slog.Info("server starting",
			"addr", addr,
			"environment", a.cfg.Server.Environment,
			"history", a.db != nil,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newServer builds the echo instance with middleware and routes registered.
func newServer(a *app, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	errMetrics := middleware.NewErrorMetrics(a.registry)
	e.HTTPErrorHandler = errMetrics.HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(errMetrics.PanicRecovery())
	e.Use(middleware.SecurityHeaders(a.cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  a.cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))

	var db *gorm.DB
	if a.db != nil {
		db = a.db.DB
	}
	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	reportHandler := handlers.NewReportHandler(a.analysis, a.metrics)

	api := e.Group("/api", limiter.Middleware(), middleware.RequireBearer(a.cfg.Security.JWTSecret, a.cfg.Security.JWTIssuer))
	api.GET("/data", reportHandler.GetData)
	api.GET("/plot", reportHandler.GetPlot)
	api.GET("/recurring", reportHandler.GetRecurring)
	api.GET("/outliers", reportHandler.GetOutliers)
	api.GET("/runs", reportHandler.ListRuns)
	api.GET("/runs/latest", reportHandler.GetLatestRun)
	api.GET("/runs/:id", reportHandler.GetRun)

	return e
}
