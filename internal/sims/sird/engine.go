package sird

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"epigrid/internal/core"
	rngcore "epigrid/pkg/core"
)

// ErrFinished is returned by Step once every configured day has run.
var ErrFinished = errors.New("simulation finished")

// Phase is the lifecycle position of an Engine.
type Phase int

const (
	Initializing Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Day is a finished simulated day handed to sinks. Grid is the swapped-in
// result and must not be retained or modified after Emit returns.
type Day struct {
	Index int
	Grid  *core.StateGrid
	Stats DayStats
}

// Sink receives every finished day, in order, from the coordinating goroutine.
type Sink interface {
	Emit(ctx context.Context, d Day) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, d Day) error

// Emit calls f.
func (f SinkFunc) Emit(ctx context.Context, d Day) error { return f(ctx, d) }

// Options carries the collaborators of an Engine.
type Options struct {
	Logger *log.Logger
	Sinks  []Sink
}

// Engine owns the grid for one run and advances it a day at a time.
type Engine struct {
	cfg    Config
	rule   Rule
	grid   *core.StateGrid
	agg    Aggregator
	blocks []Block
	views  []View

	seed    int64
	shared  *rngcore.RNG
	streams []*rngcore.RNG

	day   int
	last  DayStats
	phase Phase
	err   error

	logger *log.Logger
	sinks  []Sink
}

var _ core.Sim = (*Engine)(nil)

// New validates cfg, allocates both grid buffers and seeds day zero.
func New(cfg Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		cfg:    cfg,
		rule:   NewRule(cfg.Params),
		grid:   core.NewStateGrid(cfg.Width, cfg.Height),
		logger: logger,
		sinks:  opts.Sinks,
	}
	e.blocks = Partition(cfg.Height, cfg.EffectiveWorkers())
	e.views = make([]View, len(e.blocks))
	e.Reset(cfg.Seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "sird" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the current day's states.
func (e *Engine) Cells() []core.State { return e.grid.Cells() }

// Grid exposes the engine's grid. Callers must not swap it.
func (e *Engine) Grid() *core.StateGrid { return e.grid }

// Config returns the run configuration.
func (e *Engine) Config() Config { return e.cfg }

// Blocks returns the row partition used for every day.
func (e *Engine) Blocks() []Block { return e.blocks }

// Day returns the number of days completed.
func (e *Engine) Day() int { return e.day }

// LastStats returns the counters of the most recent day.
func (e *Engine) LastStats() DayStats { return e.last }

// Phase reports the lifecycle position.
func (e *Engine) Phase() Phase { return e.phase }

// Reset reseeds day zero with seed and rewinds to Initializing.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.shared = rngcore.NewRNG(seed)
	e.grid.Seed(e.cfg.InitialInfected, e.shared)
	e.streams = make([]*rngcore.RNG, len(e.blocks))
	for i := range e.streams {
		e.streams[i] = rngcore.NewStream(seed, i)
	}
	e.agg.Drain()
	e.last = DayStats{}
	e.day = 0
	e.phase = Initializing
	e.err = nil
}

// Run advances through every remaining configured day.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("run started", "mode", e.cfg.Mode, "size", fmt.Sprintf("%dx%d", e.cfg.Width, e.cfg.Height),
		"days", e.cfg.Days, "blocks", len(e.blocks))
	for e.phase != Finished {
		if err := e.StepContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step advances one day without a deadline.
func (e *Engine) Step() error { return e.StepContext(context.Background()) }

// StepContext evaluates one day across all blocks, waits for every block,
// drains the counters, swaps the buffers and emits the result to the sinks.
// A sink error is fatal: the engine stops and keeps returning it.
func (e *Engine) StepContext(ctx context.Context) error {
	if e.err != nil {
		return e.err
	}
	if e.phase == Finished {
		return ErrFinished
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.phase = Running

	if e.cfg.Mode == Sequential {
		e.evaluateSequential()
	} else if err := e.evaluateParallel(ctx); err != nil {
		return e.fail(err)
	}

	stats := e.agg.Drain()
	e.last = stats
	e.grid.Swap()
	d := Day{Index: e.day, Grid: e.grid, Stats: stats}
	e.logger.Debug("day complete", "day", d.Index, "new_infected", stats.NewInfected, "infectious", stats.Infectious)
	for _, s := range e.sinks {
		if err := s.Emit(ctx, d); err != nil {
			return e.fail(fmt.Errorf("day %d: %w", d.Index, err))
		}
	}

	e.day++
	if e.day >= e.cfg.Days {
		e.phase = Finished
	}
	return nil
}

func (e *Engine) fail(err error) error {
	e.err = err
	e.phase = Finished
	return err
}

func (e *Engine) evaluateSequential() {
	for i, b := range e.blocks {
		v := &e.views[i]
		v.Load(e.grid, b)
		e.agg.Merge(e.evaluateBlock(v, e.shared))
	}
}

func (e *Engine) evaluateParallel(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for i, b := range e.blocks {
		g.Go(func() error {
			v := &e.views[i]
			v.Load(e.grid, b)
			e.agg.Merge(e.evaluateBlock(v, e.streams[i]))
			return nil
		})
	}
	return g.Wait()
}

// evaluateBlock reads only the view and writes only the block's own rows of
// the next buffer.
func (e *Engine) evaluateBlock(v *View, src Source) Tally {
	var t Tally
	b := v.Block()
	out := e.grid.NextRows(b.R0, b.R1)
	w := e.grid.W
	for lr := 1; lr <= b.Rows(); lr++ {
		row := out[(lr-1)*w : lr*w]
		for c := 0; c < w; c++ {
			s := v.At(lr, c)
			k := 0
			if s == core.Susceptible {
				k = InfectedNeighbors(v, lr, c)
			}
			next, became := e.rule.Next(s, k, src)
			row[c] = next
			t.Record(became, s == core.Infected)
		}
	}
	return t
}
