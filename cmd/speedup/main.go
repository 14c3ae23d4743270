package main

import (
	"flag"
	"fmt"
	"os"

	"epigrid/internal/app"
	"epigrid/internal/output"
	"epigrid/internal/report"
)

func main() {
	in := flag.String("in", output.DefaultTimingsPath, "timings log to read")
	out := flag.String("out", "speedup.png", "chart to write")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, "info", "speedup")
	if err != nil {
		fmt.Fprintln(os.Stderr, "speedup:", err)
		os.Exit(2)
	}

	recs, err := output.ReadTimings(*in)
	if err != nil {
		logger.Error("read timings", "err", err)
		os.Exit(1)
	}
	pts, err := report.Speedup(recs)
	if err != nil {
		logger.Error("compute speed-up", "err", err)
		os.Exit(1)
	}
	for _, p := range pts {
		fmt.Printf("%3d cores  %10.4fs  x%.2f\n", p.Workers, p.Seconds, p.Speedup)
	}
	if err := report.PlotSpeedup(pts, *out); err != nil {
		logger.Error("plot", "err", err)
		os.Exit(1)
	}
	logger.Info("chart written", "path", *out)
}
