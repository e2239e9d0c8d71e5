package application

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/section-kit/internal/api"
	"github.com/eugenenazirov/section-kit/internal/config"
	"github.com/eugenenazirov/section-kit/internal/footer"
	"github.com/eugenenazirov/section-kit/internal/hero"
	"github.com/eugenenazirov/section-kit/internal/sections"
	"github.com/eugenenazirov/section-kit/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	registry *sections.Registry
	storage  storage.Storage
	handler  *api.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	registry, err := NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build sections: %w", err)
	}

	store := storage.NewMemoryStorage(registry.Names())
	if err := SeedOverrides(registry, store, cfg.SectionOverrides); err != nil {
		return nil, fmt.Errorf("failed to apply initial overrides: %w", err)
	}

	handler := api.NewHandler(registry, store, api.WithLogger(logger))
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	rootHandler, err := BuildRootHandler(apiRouter, handler.Page())
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP handler: %w", err)
	}

	return &App{
		registry: registry,
		storage:  store,
		handler:  handler,
		router:   apiRouter,
		logger:   logger,
		server:   NewServer(cfg, rootHandler),
	}, nil
}

// NewRegistry builds every section definition once. Incomplete defaults or a
// layout that drifted from its configuration type fail here, at startup.
func NewRegistry(cfg config.Config) (*sections.Registry, error) {
	heroSection, err := hero.New()
	if err != nil {
		return nil, err
	}
	footerSection, err := footer.New(footer.WithFullMarkup(cfg.FooterFullMarkup))
	if err != nil {
		return nil, err
	}
	return sections.NewRegistry(heroSection, footerSection)
}

// SeedOverrides validates and stores the override documents from the
// configuration file.
func SeedOverrides(registry *sections.Registry, store storage.Storage, overrides map[string]sections.Document) error {
	for name, doc := range overrides {
		section, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := section.Resolve(doc); err != nil {
			return err
		}
		if _, err := store.SetOverride(name, doc, ""); err != nil {
			return err
		}
	}
	return nil
}

// BuildRootHandler constructs the root HTTP handler that serves static files,
// routes API requests and renders the preview page.
func BuildRootHandler(apiHandler, pageHandler http.Handler) (http.Handler, error) {
	mux := http.NewServeMux()

	staticPath, err := resolveProjectPath(filepath.Join("web", "static"))
	if err != nil {
		return nil, err
	}
	staticDir := http.Dir(staticPath)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(staticDir)))
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", pageHandler)

	return mux, nil
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
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.Strings("sections", a.registry.Names()),
		)
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

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
