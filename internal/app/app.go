package app

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/xenking/shopfront/gen/oas"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/handler"
	"github.com/xenking/shopfront/internal/remote"
	"github.com/xenking/shopfront/internal/repository"
	"github.com/xenking/shopfront/internal/session"
	"github.com/xenking/shopfront/internal/storage/memory"
	"github.com/xenking/shopfront/internal/storage/postgres"
	"github.com/xenking/shopfront/internal/viewmodel"
	"github.com/xenking/shopfront/pkg/health"
	"github.com/xenking/shopfront/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the state server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("addr", cfg.Addr),
		zap.String("backend", cfg.Backend.URL),
		zap.String("store", cfg.Store.Driver),
	)

	healthSvc := health.New()
	healthSvc.Add(health.Liveness, "goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Add(health.Liveness, "gc", time.Second, health.GCMaxPauseCheck(time.Second))

	// Favorites store.
	var favorites product.FavoriteStore
	switch cfg.Store.Driver {
	case StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "create db pool")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		store := postgres.NewFavoriteStore(pool)
		healthSvc.Add(health.Readiness, "postgres", 5*time.Second, health.PingCheck("postgres", store))
		favorites = store
	default:
		favorites = memory.NewFavoriteStore()
	}

	// Backend client and repository.
	client, err := remote.New(remote.Config{
		BaseURL: cfg.Backend.URL,
		Store:   cfg.Backend.Store,
		Timeout: cfg.Backend.Timeout,
	},
		remote.WithTracerProvider(m.TracerProvider()),
		remote.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create backend client")
	}
	repo, err := repository.New(client, favorites, repository.Options{
		TracerProvider: m.TracerProvider(),
		MeterProvider:  m.MeterProvider(),
	})
	if err != nil {
		return errors.Wrap(err, "create repository")
	}

	// Screens.
	sess := session.NewManager(cfg.UserID)
	home := viewmodel.NewHome(repo, sess)
	h := handler.NewHandler(handler.Screens{
		Home:      home,
		Detail:    viewmodel.NewDetail(repo, home),
		Search:    viewmodel.NewSearch(repo),
		Category:  viewmodel.NewCategory(repo),
		Cart:      viewmodel.NewCart(repo, sess),
		Favorites: viewmodel.NewFavorites(repo),
	}, sess)

	oasServer, err := oas.NewServer(h,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	// The event stream is not part of the generated API.
	mux.Handle("GET /api/home/stream", otelhttp.NewHandler(http.HandlerFunc(h.HomeStream), "homeStream",
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	))
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		// No write timeout: /api/home/stream stays open for the session.
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Addr:           cfg.Addr,
		BaseContext:    func(net.Listener) context.Context { return ctx },
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.RequestID(),
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins: cfg.CORS.Origins,
				AllowHeaders: []string{"Content-Type", httpmiddleware.HeaderRequestID},
			}),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
