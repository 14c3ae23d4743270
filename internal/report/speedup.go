// Package report turns the timings log into a speed-up chart.
package report

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"epigrid/internal/output"
	"epigrid/internal/sims/sird"
)

// ErrNoTimings is returned when there is nothing to plot.
var ErrNoTimings = errors.New("no timing records")

// Point is one speed-up sample.
type Point struct {
	Workers int
	Seconds float64
	Speedup float64
}

// Speedup computes S(p) = T(1)/T(p) for every parallel record that matches
// the first record's grid size and day count. The first record, sequential or
// not, is the T(1) baseline; only parallel records become points.
func Speedup(recs []output.TimingRecord) ([]Point, error) {
	if len(recs) == 0 {
		return nil, ErrNoTimings
	}
	base := recs[0]
	t1 := base.Elapsed.Seconds()
	if t1 <= 0 {
		return nil, fmt.Errorf("baseline run %s has no elapsed time", base)
	}
	var pts []Point
	for _, r := range recs {
		if r.Mode != sird.Parallel {
			continue
		}
		if r.Width != base.Width || r.Height != base.Height || r.Days != base.Days {
			continue
		}
		secs := r.Elapsed.Seconds()
		if secs <= 0 {
			continue
		}
		pts = append(pts, Point{Workers: r.Workers, Seconds: secs, Speedup: t1 / secs})
	}
	return pts, nil
}

// PlotSpeedup writes a speed-up versus worker count chart to path. The file
// extension selects the image format.
func PlotSpeedup(pts []Point, path string) error {
	if len(pts) == 0 {
		return ErrNoTimings
	}
	p := plot.New()
	p.Title.Text = "Speed-up vs Number of Cores"
	p.X.Label.Text = "Cores"
	p.Y.Label.Text = "Speed-up"
	p.Add(plotter.NewGrid())
	p.X.Tick.Marker = plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for _, pt := range pts {
			ticks = append(ticks, plot.Tick{Value: float64(pt.Workers), Label: strconv.Itoa(pt.Workers)})
		}
		return ticks
	})

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = float64(pt.Workers)
		xys[i].Y = pt.Speedup
	}
	if err := plotutil.AddLinePoints(p, "Speed-up", xys); err != nil {
		return fmt.Errorf("add speed-up line: %w", err)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
