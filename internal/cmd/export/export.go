// Package export parses export command flags and writes the static site.
package export

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	entrypoint "github.com/gt-examples/apartment-listings/internal/platform/cmd"
	"github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"github.com/gt-examples/apartment-listings/internal/platform/logging"
	"github.com/gt-examples/apartment-listings/internal/services/web"
	"github.com/gt-examples/apartment-listings/internal/services/web/export"
)

// Config holds the export command configuration.
type Config struct {
	OutDir      string `env:"APARTMENT_LISTINGS_EXPORT_DIR" envDefault:"dist"`
	Concurrency int    `env:"APARTMENT_LISTINGS_EXPORT_CONCURRENCY" envDefault:"4"`
	LogLevel    string `env:"APARTMENT_LISTINGS_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"APARTMENT_LISTINGS_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory receiving the rendered site")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Pages rendered in parallel")
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
	return logger.With("service", entrypoint.ServiceExport), nil
}

// Run renders every locale and apartment page into cfg.OutDir.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return fmt.Errorf("output directory is required")
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceExport, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		serverConfig, err := web.DefaultConfig("", logger)
		if err != nil {
			return fmt.Errorf("init web config: %w", err)
		}
		handler, err := web.NewHandler(serverConfig)
		if err != nil {
			return fmt.Errorf("init web handler: %w", err)
		}
		opts := export.Options{Concurrency: cfg.Concurrency, Logger: logger}
		if err := export.Site(ctx, handler, cfg.OutDir, i18n.SupportedLocales(), serverConfig.Catalog.Slugs(), opts); err != nil {
			return fmt.Errorf("export site: %w", err)
		}
		return nil
	})
}
