package sird

import (
	"math"
	"testing"

	"epigrid/internal/core"
	rngcore "epigrid/pkg/core"
)

// countingSource returns a fixed draw and records how often it was asked.
type countingSource struct {
	v     float64
	calls int
}

func (c *countingSource) Float64() float64 {
	c.calls++
	return c.v
}

func TestInfectionProbability(t *testing.T) {
	r := NewRule(Params{Beta: 0.25})
	for k := 0; k <= 8; k++ {
		want := 1 - math.Pow(0.75, float64(k))
		if got := r.InfectionProbability(k); math.Abs(got-want) > 1e-12 {
			t.Fatalf("k=%d: got %v want %v", k, got, want)
		}
	}
	if r.InfectionProbability(0) != 0 {
		t.Fatal("no neighbors must mean no infection chance")
	}
}

func TestSusceptibleWithoutNeighborsConsumesNoDraw(t *testing.T) {
	r := NewRule(Params{Beta: 1})
	src := &countingSource{v: 0}
	s, became := r.Next(core.Susceptible, 0, src)
	if s != core.Susceptible || became {
		t.Fatalf("got %v/%v, want susceptible", s, became)
	}
	if src.calls != 0 {
		t.Fatalf("expected no draws, got %d", src.calls)
	}
}

func TestAbsorbingStatesConsumeNoDraw(t *testing.T) {
	r := NewRule(Params{Beta: 1, Gamma: 0.5, Mu: 0.5})
	src := &countingSource{v: 0}
	for _, s := range []core.State{core.Recovered, core.Dead} {
		for k := 0; k <= 8; k++ {
			next, became := r.Next(s, k, src)
			if next != s || became {
				t.Fatalf("%v with k=%d moved to %v", s, k, next)
			}
		}
	}
	if src.calls != 0 {
		t.Fatalf("absorbing states drew %d values", src.calls)
	}
}

func TestSusceptibleDraw(t *testing.T) {
	r := NewRule(Params{Beta: 0.5})
	// k=1: p=0.5
	if s, became := r.Apply(core.Susceptible, 1, 0.49, 0); s != core.Infected || !became {
		t.Fatalf("draw below p should infect, got %v", s)
	}
	if s, became := r.Apply(core.Susceptible, 1, 0.5, 0); s != core.Susceptible || became {
		t.Fatalf("draw at p should not infect, got %v", s)
	}
	src := &countingSource{v: 0.1}
	r.Next(core.Susceptible, 3, src)
	if src.calls != 1 {
		t.Fatalf("expected exactly one draw, got %d", src.calls)
	}
}

func TestInfectedFate(t *testing.T) {
	r := NewRule(Params{Beta: 0.3, Gamma: 0.05, Mu: 0.005})
	cases := []struct {
		draw float64
		want core.State
	}{
		{0, core.Dead},
		{0.004, core.Dead},
		{0.005, core.Recovered},
		{0.054, core.Recovered},
		{0.055, core.Infected},
		{0.99, core.Infected},
	}
	for _, c := range cases {
		got, became := r.Apply(core.Infected, 4, 0, c.draw)
		if got != c.want || became {
			t.Fatalf("draw %v: got %v want %v", c.draw, got, c.want)
		}
	}
	src := &countingSource{v: 0.5}
	r.Next(core.Infected, 0, src)
	if src.calls != 1 {
		t.Fatalf("infected cell should draw once, got %d", src.calls)
	}
}

func TestZeroTransmission(t *testing.T) {
	r := NewRule(Params{Beta: 0})
	src := rngcore.NewRNG(3)
	for i := 0; i < 1000; i++ {
		for k := 0; k <= 8; k++ {
			if s, _ := r.Next(core.Susceptible, k, src); s != core.Susceptible {
				t.Fatalf("beta=0 infected a cell with k=%d", k)
			}
		}
	}
}

func TestCertainTransmission(t *testing.T) {
	r := NewRule(Params{Beta: 1})
	src := rngcore.NewRNG(3)
	for i := 0; i < 1000; i++ {
		for k := 1; k <= 8; k++ {
			if s, became := r.Next(core.Susceptible, k, src); s != core.Infected || !became {
				t.Fatalf("beta=1 failed to infect with k=%d", k)
			}
		}
	}
	if s, _ := r.Apply(core.Susceptible, 1, math.Nextafter(1, 0), 0); s != core.Infected {
		t.Fatal("largest draw below 1 must still infect when beta=1")
	}
}

func TestTransitionEdges(t *testing.T) {
	r := NewRule(Params{Beta: 0.4, Gamma: 0.3, Mu: 0.2})
	allowed := map[core.State]map[core.State]bool{
		core.Susceptible: {core.Susceptible: true, core.Infected: true},
		core.Infected:    {core.Infected: true, core.Recovered: true, core.Dead: true},
		core.Recovered:   {core.Recovered: true},
		core.Dead:        {core.Dead: true},
	}
	src := rngcore.NewRNG(11)
	for i := 0; i < 2000; i++ {
		for from := range allowed {
			to, _ := r.Next(from, i%9, src)
			if !allowed[from][to] {
				t.Fatalf("illegal transition %v -> %v", from, to)
			}
		}
	}
}
