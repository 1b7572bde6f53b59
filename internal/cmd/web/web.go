// Package web parses web command flags and launches the listing site.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	entrypoint "github.com/gt-examples/apartment-listings/internal/platform/cmd"
	"github.com/gt-examples/apartment-listings/internal/platform/logging"
	"github.com/gt-examples/apartment-listings/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr  string `env:"APARTMENT_LISTINGS_HTTP_ADDR" envDefault:"localhost:8080"`
	LogLevel  string `env:"APARTMENT_LISTINGS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"APARTMENT_LISTINGS_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the command logger writing to w.
func NewLogger(w io.Writer, cfg Config) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	logger, err := logging.New(w, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger.With("service", entrypoint.ServiceWeb), nil
}

// Run starts the web server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		serverConfig, err := web.DefaultConfig(cfg.HTTPAddr, logger)
		if err != nil {
			return fmt.Errorf("init web config: %w", err)
		}
		server, err := web.NewServer(serverConfig)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
