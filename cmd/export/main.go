// Package main renders the apartment listing site to static files.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	exportcmd "github.com/gt-examples/apartment-listings/internal/cmd/export"
	"github.com/gt-examples/apartment-listings/internal/platform/config"
)

func main() {
	cfg, err := exportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Fatal(nil, "parse flags", err)
	}
	logger, err := exportcmd.NewLogger(os.Stderr, cfg)
	if err != nil {
		config.Fatal(nil, "init logger", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := exportcmd.Run(ctx, cfg, logger); err != nil {
		config.Fatal(logger, "export failed", err)
	}
}
