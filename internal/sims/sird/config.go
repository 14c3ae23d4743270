package sird

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// ErrInvalidConfig marks every configuration error. Callers test for it with
// errors.Is before any simulation work starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// Mode selects how a day's blocks are scheduled.
type Mode string

const (
	// Sequential evaluates every block on the calling goroutine with one
	// shared random stream consumed in row-major order.
	Sequential Mode = "sequential"
	// Parallel runs one goroutine per block, each with a private stream.
	Parallel Mode = "parallel"
)

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Sequential, Parallel:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Params holds the epidemiological rates.
type Params struct {
	// Beta is the per-infected-neighbor transmission probability.
	Beta float64
	// Gamma is the daily recovery probability of an infected cell.
	Gamma float64
	// Mu is the daily death probability of an infected cell.
	Mu float64
}

// Config controls one simulation run. It is treated as immutable once the
// engine is built.
type Config struct {
	Width  int
	Height int
	Days   int

	Workers int
	Mode    Mode

	OutDir string
	Seed   int64

	// InitialInfected is the fraction of cells seeded Infected at day zero.
	InitialInfected float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           1000,
		Height:          1000,
		Days:            365,
		Workers:         runtime.NumCPU(),
		Mode:            Parallel,
		Seed:            12345,
		InitialInfected: 0.0001,
		Params: Params{
			Beta:  0.25,
			Gamma: 0.05,
			Mu:    0.005,
		},
	}
}

// DefaultOutDir returns the per-mode frame directory used when none is set.
func DefaultOutDir(m Mode) string {
	return filepath.Join("outputs", string(m))
}

// EffectiveWorkers is the worker count a run reports: 1 in sequential mode.
func (c Config) EffectiveWorkers() int {
	if c.Mode == Sequential {
		return 1
	}
	return c.Workers
}

// Validate reports the first configuration error, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.Days <= 0:
		return fmt.Errorf("%w: days must be positive, got %d", ErrInvalidConfig, c.Days)
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if !inUnit(c.InitialInfected) {
		return fmt.Errorf("%w: initial infected fraction %v outside [0,1]", ErrInvalidConfig, c.InitialInfected)
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"beta", c.Params.Beta},
		{"gamma", c.Params.Gamma},
		{"mu", c.Params.Mu},
	}
	for _, r := range rates {
		if !inUnit(r.v) {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidConfig, r.name, r.v)
		}
	}
	if c.Params.Mu+c.Params.Gamma > 1 {
		return fmt.Errorf("%w: mu+gamma=%v exceeds 1", ErrInvalidConfig, c.Params.Mu+c.Params.Gamma)
	}
	return nil
}

// inUnit reports whether v lies in [0, 1]. NaN is outside.
func inUnit(v float64) bool { return v >= 0 && v <= 1 }

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unlike flag parsing, malformed values are reported rather than
// silently ignored.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := map[string]*int{
		"width":  &c.Width,
		"height": &c.Height,
		"days":   &c.Days,
		"cores":  &c.Workers,
	}
	for key, dst := range ints {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
		*dst = parsed
	}
	floats := map[string]*float64{
		"beta":    &c.Params.Beta,
		"gamma":   &c.Params.Gamma,
		"mu":      &c.Params.Mu,
		"initial": &c.InitialInfected,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
		*dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["mode"]; ok {
		m, err := ParseMode(v)
		if err != nil {
			return c, err
		}
		c.Mode = m
	}
	if v, ok := cfg["out"]; ok {
		c.OutDir = v
	}
	return c, nil
}
