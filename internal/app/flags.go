package app

import (
	"flag"
	"fmt"
	"io"

	"epigrid/internal/output"
	"epigrid/internal/sims/sird"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim sird.Config

	Timings  string
	Stats    string
	Video    string
	FPS      int
	Scale    int
	Frames   bool
	LogLevel string

	// Viewer only.
	DaysPerSecond int
	WindowScale   int
}

// NewConfig returns a Config populated with defaults for mode.
func NewConfig(mode sird.Mode) *Config {
	sim := sird.DefaultConfig()
	sim.Mode = mode
	return &Config{
		Sim:           sim,
		Timings:       output.DefaultTimingsPath,
		FPS:           10,
		Scale:         1,
		Frames:        true,
		LogLevel:      "info",
		DaysPerSecond: 10,
		WindowScale:   1,
	}
}

type modeValue struct{ m *sird.Mode }

func (v modeValue) String() string {
	if v.m == nil {
		return ""
	}
	return string(*v.m)
}

func (v modeValue) Set(s string) error {
	m, err := sird.ParseMode(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Sim.Width, "width", c.Sim.Width, "grid width in cells")
	fs.IntVar(&c.Sim.Height, "height", c.Sim.Height, "grid height in cells")
	fs.IntVar(&c.Sim.Days, "days", c.Sim.Days, "number of days to simulate")
	fs.IntVar(&c.Sim.Workers, "cores", c.Sim.Workers, "worker count for parallel mode")
	fs.StringVar(&c.Sim.OutDir, "out", c.Sim.OutDir, "frame output directory (default outputs/<mode>)")
	fs.Var(modeValue{&c.Sim.Mode}, "mode", "scheduling mode: sequential or parallel")
	fs.Int64Var(&c.Sim.Seed, "seed", c.Sim.Seed, "random seed")
	fs.Float64Var(&c.Sim.InitialInfected, "initial", c.Sim.InitialInfected, "fraction of cells infected on day zero")
	fs.Float64Var(&c.Sim.Params.Beta, "beta", c.Sim.Params.Beta, "transmission probability per infected neighbor")
	fs.Float64Var(&c.Sim.Params.Gamma, "gamma", c.Sim.Params.Gamma, "daily recovery probability")
	fs.Float64Var(&c.Sim.Params.Mu, "mu", c.Sim.Params.Mu, "daily mortality probability")

	fs.StringVar(&c.Timings, "timings", c.Timings, "timings log appended after the run")
	fs.StringVar(&c.Stats, "stats", c.Stats, "optional daily statistics CSV")
	fs.StringVar(&c.Video, "video", c.Video, "optional MJPEG AVI of every day")
	fs.IntVar(&c.FPS, "fps", c.FPS, "video frames per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in frames and video")
	fs.BoolVar(&c.Frames, "frames", c.Frames, "write one PNG per day")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	fs.IntVar(&c.DaysPerSecond, "dps", c.DaysPerSecond, "viewer days per second")
	fs.IntVar(&c.WindowScale, "window-scale", c.WindowScale, "viewer pixel scale multiplier")
}

// Finalize fills derived defaults and validates the simulation settings.
func (c *Config) Finalize() error {
	if c.Sim.OutDir == "" {
		c.Sim.OutDir = sird.DefaultOutDir(c.Sim.Mode)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d", sird.ErrInvalidConfig, c.Scale)
	}
	return c.Sim.Validate()
}

// Parse builds a Config for mode from command-line arguments. Unknown flags
// and malformed values are configuration errors.
func Parse(name string, mode sird.Mode, args []string, stderr io.Writer) (*Config, error) {
	cfg := NewConfig(mode)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", sird.ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", sird.ErrInvalidConfig, fs.Arg(0))
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
