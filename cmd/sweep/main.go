package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"epigrid/internal/app"
	"epigrid/internal/sims/sird"
)

type sweepRun struct {
	mode    sird.Mode
	workers int
}

// sweepRuns lists the sequential baseline followed by parallel runs at
// 1, 2, 4, ... workers, always ending at limit.
func sweepRuns(limit int) []sweepRun {
	runs := []sweepRun{{sird.Sequential, 1}}
	last := 0
	for w := 1; w <= limit; w *= 2 {
		runs = append(runs, sweepRun{sird.Parallel, w})
		last = w
	}
	if last != limit {
		runs = append(runs, sweepRun{sird.Parallel, limit})
	}
	return runs
}

// sweep runs one sequential baseline followed by one parallel run per worker
// count, appending every run to the timings log for cmd/speedup.
func main() {
	cfg := app.NewConfig(sird.Parallel)
	cfg.Frames = false
	cfg.Sim.Width = 500
	cfg.Sim.Height = 500
	cfg.Sim.Days = 100
	fs := flag.CommandLine
	cfg.Bind(fs)
	maxWorkers := fs.Int("max-cores", runtime.NumCPU(), "largest worker count to sweep")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, "sweep")
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweep:", err)
		os.Exit(2)
	}
	if *maxWorkers < 1 {
		logger.Error("max-cores must be at least 1", "max-cores", *maxWorkers)
		os.Exit(2)
	}

	runs := sweepRuns(*maxWorkers)

	fmt.Printf("Sweeping %d runs (%dx%d, %d days)\n", len(runs), cfg.Sim.Width, cfg.Sim.Height, cfg.Sim.Days)
	for _, r := range runs {
		run := *cfg
		run.Sim.Mode = r.mode
		run.Sim.Workers = r.workers
		run.Sim.OutDir = ""
		if err := run.Finalize(); err != nil {
			logger.Error("invalid configuration", "err", err)
			os.Exit(2)
		}
		rec, err := app.Run(context.Background(), &run, logger)
		if err != nil {
			logger.Error("run failed", "mode", r.mode, "workers", r.workers, "err", err)
			os.Exit(1)
		}
		fmt.Println(rec)
	}
}
