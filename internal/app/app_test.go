package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"epigrid/internal/output"
	"epigrid/internal/sims/sird"
)

func TestParseSpecFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")
	cfg, err := Parse("sird", sird.Parallel, []string{
		"--width", "12", "--height", "7", "--days", "4", "--cores", "3", "--out", out,
	}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := cfg.Sim
	if s.Width != 12 || s.Height != 7 || s.Days != 4 || s.Workers != 3 || s.OutDir != out {
		t.Fatalf("unexpected config %+v", s)
	}
	if s.Mode != sird.Parallel {
		t.Fatalf("mode %v", s.Mode)
	}
}

func TestParseDefaultOutDir(t *testing.T) {
	cfg, err := Parse("sird", sird.Sequential, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim.OutDir != filepath.Join("outputs", "sequential") {
		t.Fatalf("default out dir %q", cfg.Sim.OutDir)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{"--width", "wide"},
		{"--days", "0"},
		{"--cores", "0"},
		{"--mu", "0.6", "--gamma", "0.5"},
		{"--mode", "warp"},
		{"--beta", "NaN"},
		{"--gamma", "NaN"},
		{"--mu", "NaN"},
		{"--initial", "NaN"},
		{"--scale", "0"},
		{"stray"},
	}
	for _, args := range cases {
		_, err := Parse("sird", sird.Parallel, args, io.Discard)
		if !errors.Is(err, sird.ErrInvalidConfig) {
			t.Fatalf("%v: expected configuration error, got %v", args, err)
		}
	}
	if _, err := Parse("sird", sird.Parallel, []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	if _, err := NewLogger(io.Discard, "loud", "x"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestRunWritesFramesAndTiming(t *testing.T) {
	dir := t.TempDir()
	for _, mode := range []sird.Mode{sird.Sequential, sird.Parallel} {
		cfg := NewConfig(mode)
		cfg.Sim.Width = 10
		cfg.Sim.Height = 6
		cfg.Sim.Days = 3
		cfg.Sim.Workers = 4
		cfg.Sim.OutDir = filepath.Join(dir, "out", string(mode))
		cfg.Timings = filepath.Join(dir, "timings.csv")
		cfg.Stats = filepath.Join(dir, string(mode)+".csv")
		cfg.Video = filepath.Join(dir, string(mode)+".avi")
		if err := cfg.Finalize(); err != nil {
			t.Fatal(err)
		}
		if _, err := Run(context.Background(), cfg, log.New(io.Discard)); err != nil {
			t.Fatalf("%s: run: %v", mode, err)
		}
		for d := 0; d < 3; d++ {
			if _, err := os.Stat(filepath.Join(cfg.Sim.OutDir, output.FrameName(d))); err != nil {
				t.Fatalf("%s: frame %d missing: %v", mode, d, err)
			}
		}
		stats, err := os.ReadFile(cfg.Stats)
		if err != nil {
			t.Fatal(err)
		}
		if n := strings.Count(string(stats), "\n"); n != 4 {
			t.Fatalf("%s: stats has %d lines, want 4", mode, n)
		}
	}
	recs, err := output.ReadTimings(filepath.Join(dir, "timings.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 timing records, got %d", len(recs))
	}
	if recs[0].Mode != sird.Sequential || recs[0].Workers != 1 {
		t.Fatalf("sequential record %+v", recs[0])
	}
	if recs[1].Mode != sird.Parallel || recs[1].Workers != 4 || recs[1].Width != 10 || recs[1].Height != 6 {
		t.Fatalf("parallel record %+v", recs[1])
	}
}

func TestRunFailsWhenOutDirBlocked(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig(sird.Parallel)
	cfg.Sim.Width, cfg.Sim.Height, cfg.Sim.Days = 4, 4, 2
	cfg.Sim.OutDir = filepath.Join(blocker, "frames")
	cfg.Timings = filepath.Join(dir, "timings.csv")
	if _, err := Run(context.Background(), cfg, log.New(io.Discard)); err == nil {
		t.Fatal("expected error when the output directory cannot be created")
	}
	if _, err := os.Stat(cfg.Timings); !os.IsNotExist(err) {
		t.Fatal("no timing record may be written for a failed run")
	}
}
