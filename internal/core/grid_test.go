package core

import (
	"math/rand/v2"
	"testing"
	"time"
)

type fixedPicker struct{ vals []int }

func (f *fixedPicker) IntN(n int) int {
	v := f.vals[0] % n
	f.vals = f.vals[1:]
	return v
}

func TestSwapExchangesBuffers(t *testing.T) {
	g := NewStateGrid(3, 2)
	cur := g.Cells()
	next := g.Next()
	next[0] = Dead
	g.Swap()
	if &g.Cells()[0] != &next[0] || &g.Next()[0] != &cur[0] {
		t.Fatal("swap must exchange buffers without copying")
	}
	if g.At(0, 0) != Dead {
		t.Fatalf("expected swapped cell to read Dead, got %v", g.At(0, 0))
	}
}

func TestAtOffGridIsSusceptible(t *testing.T) {
	g := NewStateGrid(2, 2)
	for i := range g.Cells() {
		g.Cells()[i] = Infected
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if s := g.At(p[0], p[1]); s != Susceptible {
			t.Fatalf("off-grid (%d,%d) read %v", p[0], p[1], s)
		}
	}
	g.Set(5, 5, Dead)
	if g.Census()[Dead] != 0 {
		t.Fatal("off-grid Set must be ignored")
	}
}

func TestCensusCountsCurrentCells(t *testing.T) {
	g := NewStateGrid(3, 2)
	g.Set(0, 0, Infected)
	g.Set(1, 0, Recovered)
	g.Set(2, 1, Dead)
	g.Next()[0] = Dead
	c := g.Census()
	if c[Susceptible] != 3 || c[Infected] != 1 || c[Recovered] != 1 || c[Dead] != 1 {
		t.Fatalf("unexpected census %v", c)
	}
	if c.Total() != 6 || c.Removed() != 2 {
		t.Fatalf("total %d removed %d", c.Total(), c.Removed())
	}
}

func TestSeedCount(t *testing.T) {
	cases := []struct {
		w, h int
		frac float64
		want int
	}{
		{1000, 1000, 0.0001, 100},
		{10, 10, 0.0001, 1},
		{1, 1, 0, 1},
		{10, 10, 0.25, 25},
		{3, 5, 0.1, 2},
	}
	for _, c := range cases {
		if got := SeedCount(c.w, c.h, c.frac); got != c.want {
			t.Fatalf("SeedCount(%d,%d,%v)=%d want %d", c.w, c.h, c.frac, got, c.want)
		}
	}
}

func TestSeedAllowsDuplicatePicks(t *testing.T) {
	g := NewStateGrid(4, 4)
	g.Cells()[0] = Dead
	// four picks, all landing on (1,2)
	g.Seed(0.25, &fixedPicker{vals: []int{2, 1, 2, 1, 2, 1, 2, 1}})
	c := g.Census()
	if c[Infected] != 1 {
		t.Fatalf("expected one infected cell, got %d", c[Infected])
	}
	if g.At(1, 2) != Infected {
		t.Fatal("picked cell should be infected")
	}
	if c.Total() != 16 || c[Dead] != 0 {
		t.Fatalf("seed must clear the grid first, census %v", c)
	}
}

func TestSeedUniform(t *testing.T) {
	g := NewStateGrid(50, 40)
	g.Seed(0.05, rand.New(rand.NewPCG(1, 2)))
	c := g.Census()
	if c[Infected] == 0 || c[Infected] > 100 {
		t.Fatalf("unexpected infected count %d", c[Infected])
	}
	if c.Total() != 2000 {
		t.Fatalf("population %d, want 2000", c.Total())
	}
}

func TestPacer(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(4)
	p.now = func() time.Time { return now }
	if !p.Due() {
		t.Fatal("first call should be due")
	}
	if p.Due() {
		t.Fatal("no time elapsed, should not be due")
	}
	now = now.Add(250 * time.Millisecond)
	if !p.Due() {
		t.Fatal("a full step elapsed, should be due")
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(1500 * time.Millisecond); got != "1.500000" {
		t.Fatalf("got %q", got)
	}
}
