// Package main starts the apartment listing web server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/gt-examples/apartment-listings/internal/cmd/web"
	"github.com/gt-examples/apartment-listings/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Fatal(nil, "parse flags", err)
	}
	logger, err := webcmd.NewLogger(os.Stderr, cfg)
	if err != nil {
		config.Fatal(nil, "init logger", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg, logger); err != nil {
		config.Fatal(logger, "failed to serve", err)
	}
}
