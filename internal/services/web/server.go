package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"github.com/gt-examples/apartment-listings/internal/platform/i18n/catalog"
	"github.com/gt-examples/apartment-listings/internal/platform/timeouts"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage/memory"
	module "github.com/gt-examples/apartment-listings/internal/services/web/module"
	"github.com/gt-examples/apartment-listings/internal/services/web/modules"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/httpx"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/observability"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/weberror"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
	"github.com/gt-examples/apartment-listings/internal/services/web/static"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
)

// Config defines the inputs for the web handler and server.
type Config struct {
	HTTPAddr     string
	Catalog      storage.Catalog
	Translations module.Translations
	Logger       *slog.Logger
}

// Server hosts the web handler over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

// DefaultConfig returns a config over the sample catalog and embedded translations.
func DefaultConfig(httpAddr string, logger *slog.Logger) (Config, error) {
	store, err := memory.NewSeeded()
	if err != nil {
		return Config{}, fmt.Errorf("build catalog: %w", err)
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return Config{}, fmt.Errorf("load translations: %w", err)
	}
	if err := bundle.Require(translatedLocales()...); err != nil {
		return Config{}, fmt.Errorf("load translations: %w", err)
	}
	return Config{HTTPAddr: httpAddr, Catalog: store, Translations: bundle, Logger: logger}, nil
}

// translatedLocales lists the supported locales that need a catalog.
func translatedLocales() []string {
	var out []string
	for _, locale := range i18n.SupportedLocales() {
		if locale != catalog.BaseLocale {
			out = append(out, locale)
		}
	}
	return out
}

// NewHandler composes the module routes, static assets and middleware.
func NewHandler(config Config) (http.Handler, error) {
	if config.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if config.Translations == nil {
		return nil, errors.New("translations are required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	mux.Handle(routepath.StaticPrefix, httpx.Chain(
		http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)),
		httpx.RequireMethods(http.MethodGet, http.MethodHead),
	))

	deps := module.Dependencies{Catalog: config.Catalog, Translations: config.Translations, Logger: logger}
	for _, m := range modules.Default(deps) {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" {
			prefix = routepath.Root
		}
		mux.Handle(prefix, mount.Handler)
		logger.Debug("mounted web module", "module", m.ID(), "prefix", prefix)
	}

	return httpx.Chain(mux,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger, internalErrorPage(config.Translations)),
		observability.Trace(nil),
		httpx.SecurityHeaders(),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// internalErrorPage renders the 500 page in the default locale.
func internalErrorPage(translations module.Translations) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := webtemplates.PageContext{
			Lang:        i18n.DefaultLocale,
			RouteLocale: i18n.DefaultLocale,
			Loc:         translations.Localizer(i18n.DefaultLocale),
		}
		weberror.WriteAppError(w, r, http.StatusInternalServerError, page, "")
	})
}

// NewServer builds a server for config.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
	}, nil
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("web stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Handler returns the composed HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", "error", err)
	}
}
