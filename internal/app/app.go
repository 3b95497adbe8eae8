// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bissquit/auctionhub/api/openapi"
	"github.com/bissquit/auctionhub/internal/bids"
	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/config"
	"github.com/bissquit/auctionhub/internal/dashboard"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/bissquit/auctionhub/internal/version"
	"github.com/bissquit/auctionhub/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	server        *http.Server
	metricsServer *http.Server
	ready         atomic.Bool
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)

	app := &App{
		config: cfg,
		logger: logger,
	}

	router, err := app.setupRouter()
	if err != nil {
		return nil, fmt.Errorf("setup router: %w", err)
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	app.ready.Store(true)
	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")
	a.ready.Store(false)

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

func (a *App) setupRouter() (*chi.Mux, error) {
	allowList, err := identity.NewAllowList(accountsFromConfig(a.config.Auth.Accounts), a.config.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create allow list: %w", err)
	}

	codec, err := identity.NewTokenCodec(a.config.Session.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("create session codec: %w", err)
	}
	stores := identity.CookieStoreFactory(codec, identity.CookieSettings{
		Name:   a.config.Session.CookieName,
		Domain: a.config.Session.CookieDomain,
		Secure: a.config.Session.CookieSecure,
		MaxAge: a.config.Session.MaxAge,
	})

	slog.Info("identity configured",
		"accounts", len(a.config.Auth.Accounts),
		"allow_fallback", a.config.Auth.AllowFallback,
		"latency", a.config.Auth.Latency,
	)
	if a.config.Auth.AllowFallback {
		slog.Warn("fallback login is enabled: unknown credentials create customer sessions")
	}

	catalogService := catalog.NewService(catalog.NewMemoryRepository(
		catalog.FixtureAuctions(time.Now()),
		catalog.FixtureArtists(),
	))
	bidService := bids.NewService(catalogService)
	sellerService := sellers.NewService(sellers.NewMemoryRepository())
	dashboardService := dashboard.NewService(dashboard.Fixtures{})

	pages, err := web.NewHandler(web.Config{
		Catalog:      catalogService,
		Bids:         bidService,
		Sellers:      sellerService,
		Dashboard:    dashboardService,
		Accounts:     allowList.Identities(),
		DemoAccounts: demoAccounts(a.config.Auth.Accounts),
		SecureCookie: a.config.Session.CookieSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("create page handler: %w", err)
	}

	identityHandler := identity.NewHandler()
	catalogHandler := catalog.NewHandler(catalogService)
	bidsHandler := bids.NewHandler(bidService, a.config.Session.CookieSecure)
	sellersHandler := sellers.NewHandler(sellerService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	pageGuard := identity.NewGuard(identity.GuardConfig{
		LoginPath:   "/login",
		Forbidden:   http.HandlerFunc(pages.Forbidden),
		Placeholder: http.HandlerFunc(pages.Loading),
	})
	apiGuard := identity.NewGuard(identity.GuardConfig{API: true})

	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(httputil.SecurityHeaders)

	r.Get("/healthz", a.healthzHandler)
	r.Get("/readyz", a.readyzHandler)
	r.Get("/version", a.versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(openapi.Spec)
	})

	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>AuctionHub API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/api/openapi.yaml",
            dom_id: '#swagger-ui',
            presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
            layout: "BaseLayout"
        });
    </script>
</body>
</html>`))
	})

	r.Group(func(r chi.Router) {
		r.Use(identity.Middleware(allowList, stores, identity.ProviderConfig{
			AllowFallback: a.config.Auth.AllowFallback,
			Latency:       a.config.Auth.Latency,
		}))

		r.Route("/api/v1", func(r chi.Router) {
			r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
				httputil.Error(w, http.StatusNotFound, "not found")
			})

			identityHandler.RegisterRoutes(r)
			catalogHandler.RegisterPublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(apiGuard.Require(domain.RoleCustomer))
				identityHandler.RegisterProtectedRoutes(r)
				bidsHandler.RegisterRoutes(r)
				sellersHandler.RegisterRoutes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(apiGuard.Require(domain.RoleSeller))
				dashboardHandler.RegisterSellerRoutes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(apiGuard.Require(domain.RoleAdmin))
				dashboardHandler.RegisterAdminRoutes(r)
				sellersHandler.RegisterAdminRoutes(r)
				catalogHandler.RegisterAdminRoutes(r)
			})
		})

		pages.Register(r, pageGuard)
	})

	return r, nil
}

func accountsFromConfig(in []config.AccountConfig) []identity.Account {
	out := make([]identity.Account, 0, len(in))
	for _, acc := range in {
		out = append(out, identity.Account{
			Username:     acc.Username,
			Email:        acc.Email,
			Name:         acc.Name,
			Role:         domain.Role(acc.Role),
			Password:     acc.Password,
			PasswordHash: acc.PasswordHash,
		})
	}
	return out
}

// demoAccounts lists the plaintext-configured accounts for the login page.
// Accounts configured with a hash stay hidden.
func demoAccounts(in []config.AccountConfig) []web.DemoAccount {
	var out []web.DemoAccount
	for _, acc := range in {
		if acc.Password == "" || acc.PasswordHash != "" {
			continue
		}
		out = append(out, web.DemoAccount{
			Username: acc.Username,
			Password: acc.Password,
			Role:     domain.Role(acc.Role),
		})
	}
	return out
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) readyzHandler(w http.ResponseWriter, _ *http.Request) {
	if !a.ready.Load() {
		httputil.Text(w, http.StatusServiceUnavailable, "Shutting down")
		return
	}

	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
