package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"epigrid/internal/app"
	"epigrid/internal/sims/sird"
)

func main() {
	cfg, err := app.Parse("sird", sird.Parallel, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sird:", err)
		os.Exit(2)
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, "sird")
	if err != nil {
		fmt.Fprintln(os.Stderr, "sird:", err)
		os.Exit(2)
	}
	if _, err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
