//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"epigrid/internal/app"
	"epigrid/internal/sims/sird"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig(sird.Parallel)
	cfg.Sim.Width = 256
	cfg.Sim.Height = 256
	cfg.Sim.InitialInfected = 0.0005
	cfg.WindowScale = 3
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, "viewer")
	if err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(2)
	}
	if err := cfg.Finalize(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	eng, err := sird.New(cfg.Sim, sird.Options{Logger: logger})
	if err != nil {
		logger.Fatal("build engine", "err", err)
	}

	game := app.New(eng, cfg.WindowScale, cfg.DaysPerSecond)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("epigrid — " + eng.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("viewer", "err", err)
	}
}
