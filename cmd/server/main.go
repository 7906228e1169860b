package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-devops/internal/config"
	"github.com/janisto/hello-devops/internal/http/routes"
	applog "github.com/janisto/hello-devops/internal/platform/logging"
	"github.com/janisto/hello-devops/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-devops/internal/platform/middleware"
	"github.com/janisto/hello-devops/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "1.0.0"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogWarn(context.Background(), "invalid log level, keeping info", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, m),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
	case sig := <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newRouter builds the full middleware stack and mounts every route. m may be
// nil, in which case no metrics are recorded or exposed.
func newRouter(cfg *config.Config, m *metrics.Metrics) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(routes.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSOrigins...),
		appmiddleware.RequestID(),
		// Trust X-Forwarded-For only behind a proxy that overwrites it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
	)
	if m != nil {
		router.Use(m.Middleware())
	}
	router.Use(respond.Recoverer())
	if cfg.RateLimitEnabled() {
		router.Use(appmiddleware.RateLimit(
			cfg.RateLimitRPS,
			cfg.RateLimitBurst,
			respond.TooManyRequestsHandler(),
			"/health", "/metrics",
		))
	}

	if m != nil {
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}
	api := routes.NewAPI(router, Version)
	routes.Register(router, api)
	return router
}
