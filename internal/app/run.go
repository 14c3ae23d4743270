package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"epigrid/internal/core"
	"epigrid/internal/output"
	"epigrid/internal/sims/sird"
)

// Sinks builds the per-day collaborators selected by cfg. The returned
// closers must be closed after the run, in order.
func Sinks(cfg *Config) ([]sird.Sink, []io.Closer, error) {
	var (
		sinks   []sird.Sink
		closers []io.Closer
	)
	sim := cfg.Sim
	if cfg.Frames {
		sinks = append(sinks, output.NewFrameWriter(sim.OutDir, sim.Width, sim.Height, cfg.Scale))
	}
	if cfg.Stats != "" {
		sw, err := output.CreateStatsFile(cfg.Stats)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, sw)
		closers = append(closers, sw)
	}
	if cfg.Video != "" {
		vw, err := output.NewVideoWriter(cfg.Video, sim.Width, sim.Height, cfg.Scale, cfg.FPS)
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		sinks = append(sinks, vw)
		closers = append(closers, vw)
	}
	return sinks, closers, nil
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run executes one headless run: it creates the output directory, simulates
// every day, then appends the timing record. Any error is fatal for the run.
func Run(ctx context.Context, cfg *Config, logger *log.Logger) (output.TimingRecord, error) {
	sim := cfg.Sim
	if err := output.EnsureDir(sim.OutDir); err != nil {
		return output.TimingRecord{}, err
	}
	sinks, closers, err := Sinks(cfg)
	if err != nil {
		return output.TimingRecord{}, err
	}
	eng, err := sird.New(sim, sird.Options{Logger: logger, Sinks: sinks})
	if err != nil {
		closeAll(closers)
		return output.TimingRecord{}, err
	}
	logger.Debug("parameters", eng.Parameters().Pairs()...)

	sw := core.StartStopwatch()
	runErr := eng.Run(ctx)
	sw.Stop()
	if err := closeAll(closers); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return output.TimingRecord{}, fmt.Errorf("%s run: %w", sim.Mode, runErr)
	}

	rec := output.NewTimingRecord(sim, sw.Elapsed())
	if err := output.AppendTiming(cfg.Timings, rec); err != nil {
		return rec, err
	}
	logger.Info(fmt.Sprintf("Done %s in %s", sim.Mode, sw.Elapsed()), "days", eng.Day(), "census", eng.Grid().Census())
	return rec, nil
}
