package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "fastfeet/internal/app"
	"fastfeet/internal/handlers/rest/deliveries_get"
	"fastfeet/internal/handlers/rest/delivered_get"
	"fastfeet/internal/handlers/rest/delivered_put"
	"fastfeet/internal/handlers/rest/deliveryman_delete"
	"fastfeet/internal/handlers/rest/deliveryman_get"
	"fastfeet/internal/handlers/rest/deliveryman_post"
	"fastfeet/internal/handlers/rest/deliveryman_put"
	"fastfeet/internal/handlers/rest/deliverymans_get"
	"fastfeet/internal/handlers/rest/file_post"
	"fastfeet/internal/handlers/rest/healthcheck_head"
	"fastfeet/internal/handlers/rest/order_delete"
	"fastfeet/internal/handlers/rest/order_get"
	"fastfeet/internal/handlers/rest/order_post"
	"fastfeet/internal/handlers/rest/order_put"
	"fastfeet/internal/handlers/rest/orders_get"
	"fastfeet/internal/handlers/rest/ping_get"
	"fastfeet/internal/handlers/rest/problem_delete"
	"fastfeet/internal/handlers/rest/problem_get"
	"fastfeet/internal/handlers/rest/problem_post"
	"fastfeet/internal/handlers/rest/problems_get"
	"fastfeet/internal/handlers/rest/recipient_delete"
	"fastfeet/internal/handlers/rest/recipient_get"
	"fastfeet/internal/handlers/rest/recipient_post"
	"fastfeet/internal/handlers/rest/recipient_put"
	"fastfeet/internal/handlers/rest/recipients_get"
	"fastfeet/internal/handlers/rest/session_post"
	"fastfeet/internal/handlers/rest/user_post"
	"fastfeet/internal/handlers/rest/user_put"
	"fastfeet/internal/handlers/rest/withdrawal_put"
	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/dotenv"
	"fastfeet/internal/pkg/middlewares/auth"
	"fastfeet/internal/pkg/middlewares/graceful_shutdown"
	"fastfeet/internal/pkg/middlewares/metrics"
	"fastfeet/internal/pkg/middlewares/rate_limiter"
	"fastfeet/internal/pkg/middlewares/timeout"
	"fastfeet/internal/pkg/postgres"
	"fastfeet/pkg/logger"
	"fastfeet/pkg/logger/zap_adapter"
	"fastfeet/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fastfeet application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	err = postgres.Migrate(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx backs BaseContext and must outlive SIGTERM: it is canceled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not inherit from ctx, which is already canceled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/sessions", session_post.New(log, app.ServiceUser)).Methods("POST")

	// deliveryman-facing routes, reachable without an admin session
	router.Handle("/deliverymans/{id}/deliveries", deliveries_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/deliverymans/{id}/delivered", delivered_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{orderId}/withdrawal", withdrawal_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/orders/{orderId}/delivered", delivered_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/delivery/{deliverymanId}/problems", problem_post.New(log, app.ServiceProblem)).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware(log, []byte(cfg.Auth.JWTSecret)))

	protected.Handle("/users", user_put.New(log, app.ServiceUser)).Methods("PUT")

	protected.Handle("/recipients", recipients_get.New(log, app.ServiceRecipient)).Methods("GET")
	protected.Handle("/recipients/{id}", recipient_get.New(log, app.ServiceRecipient)).Methods("GET")
	protected.Handle("/recipients", recipient_post.New(log, app.ServiceRecipient)).Methods("POST")
	protected.Handle("/recipients/{id}", recipient_put.New(log, app.ServiceRecipient)).Methods("PUT")
	protected.Handle("/recipients/{id}", recipient_delete.New(log, app.ServiceRecipient)).Methods("DELETE")

	protected.Handle("/deliverymans", deliverymans_get.New(log, app.ServiceDeliveryman)).Methods("GET")
	protected.Handle("/deliverymans/{id}", deliveryman_get.New(log, app.ServiceDeliveryman)).Methods("GET")
	protected.Handle("/deliverymans", deliveryman_post.New(log, app.ServiceDeliveryman)).Methods("POST")
	protected.Handle("/deliverymans/{id}", deliveryman_put.New(log, app.ServiceDeliveryman)).Methods("PUT")
	protected.Handle("/deliverymans/{id}", deliveryman_delete.New(log, app.ServiceDeliveryman)).Methods("DELETE")

	protected.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	protected.Handle("/orders/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	protected.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	protected.Handle("/problems", problems_get.New(log, app.ServiceProblem)).Methods("GET")
	protected.Handle("/delivery/{problemId}/problems", problem_get.New(log, app.ServiceProblem)).Methods("GET")
	protected.Handle("/problem/{problemId}/cancel-delivery", problem_delete.New(log, app.ServiceProblem)).Methods("DELETE")

	protected.Handle("/files", file_post.New(log, app.ServiceFile)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
