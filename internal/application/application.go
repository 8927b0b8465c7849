package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rabbitcabbage/blogconfig/internal/api"
	"github.com/rabbitcabbage/blogconfig/internal/config"
	"github.com/rabbitcabbage/blogconfig/internal/override"
	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
	"github.com/rabbitcabbage/blogconfig/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage storage.Storage
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// ResolveSite picks the override (the file named in cfg, or the built-in
// one), merges it over the template defaults and resolves the base path.
func ResolveSite(cfg config.Config, loader *override.Loader) (siteconfig.Config, error) {
	userCfg, err := LoadOverride(cfg, loader)
	if err != nil {
		return siteconfig.Config{}, err
	}
	return siteconfig.Build(userCfg, cfg.BasePath)
}

// LoadOverride returns the override named by cfg.OverrideFile, or siteconfig.User.
func LoadOverride(cfg config.Config, loader *override.Loader) (siteconfig.UserConfig, error) {
	if cfg.OverrideFile == "" {
		return siteconfig.User, nil
	}
	if loader == nil {
		loader = override.NewLoader(nil)
	}
	userCfg, err := loader.Load(cfg.OverrideFile)
	if err != nil {
		return siteconfig.UserConfig{}, fmt.Errorf("load override: %w", err)
	}
	return userCfg, nil
}

// New initializes the application around an already resolved site configuration.
func New(cfg config.Config, site siteconfig.Config, logger *zap.Logger) (*App, error) {
	if err := siteconfig.Validate(site); err != nil {
		return nil, fmt.Errorf("refusing to serve invalid site configuration: %w", err)
	}

	store := storage.NewSnapshot(site)
	handler := api.NewHandler(store)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		storage: store,
		handler: handler,
		router:  apiRouter,
		logger:  logger,
		server:  NewServer(cfg, BuildRootHandler(apiRouter)),
	}, nil
}

// BuildRootHandler routes API requests and redirects the root to the full configuration.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/api/config", http.StatusFound)
	}))
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
