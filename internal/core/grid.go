package core

import "math"

// StateGrid stores two row-major buffers of cell states. Cur is the day being
// read, next is the day being written; Swap exchanges them.
type StateGrid struct {
	W, H int
	cur  []State
	next []State
}

// NewStateGrid allocates both buffers with every cell Susceptible.
func NewStateGrid(w, h int) *StateGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &StateGrid{W: w, H: h, cur: make([]State, w*h), next: make([]State, w*h)}
}

// Cells exposes the current buffer so callers can read/write values directly.
func (g *StateGrid) Cells() []State { return g.cur }

// Next exposes the buffer being written for the following day.
func (g *StateGrid) Next() []State { return g.next }

// Index returns the linear slice index for coordinates (x, y).
func (g *StateGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *StateGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the current state at (x, y). Off-grid coordinates read as
// Susceptible, the non-infectious default.
func (g *StateGrid) At(x, y int) State {
	if !g.InBounds(x, y) {
		return Susceptible
	}
	return g.cur[y*g.W+x]
}

// Set writes s into the current buffer. Off-grid writes are ignored.
func (g *StateGrid) Set(x, y int, s State) {
	if !g.InBounds(x, y) {
		return
	}
	g.cur[y*g.W+x] = s
}

// Row returns row y of the current buffer, or nil when y is off-grid.
func (g *StateGrid) Row(y int) []State {
	if y < 0 || y >= g.H {
		return nil
	}
	return g.cur[y*g.W : (y+1)*g.W]
}

// NextRows returns rows [r0, r1) of the next buffer.
func (g *StateGrid) NextRows(r0, r1 int) []State {
	return g.next[r0*g.W : r1*g.W]
}

// Swap exchanges the current and next buffers without copying.
func (g *StateGrid) Swap() { g.cur, g.next = g.next, g.cur }

// Clear resets the current buffer to all Susceptible.
func (g *StateGrid) Clear() {
	for i := range g.cur {
		g.cur[i] = Susceptible
	}
}

// SeedCount returns how many random picks Seed makes for the fraction.
func SeedCount(w, h int, fraction float64) int {
	n := int(math.Round(float64(w*h) * fraction))
	if n < 1 {
		n = 1
	}
	return n
}

// IntNer draws uniform integers in [0, n).
type IntNer interface {
	IntN(n int) int
}

// Seed clears the grid and marks SeedCount uniformly random cells Infected.
// Repeated picks of the same cell are allowed and leave it Infected.
func (g *StateGrid) Seed(fraction float64, rng IntNer) {
	g.Clear()
	n := SeedCount(g.W, g.H, fraction)
	for i := 0; i < n; i++ {
		y := rng.IntN(g.H)
		x := rng.IntN(g.W)
		g.cur[y*g.W+x] = Infected
	}
}

// Census counts the current cells per state.
func (g *StateGrid) Census() Census {
	var c Census
	for _, s := range g.cur {
		if s.Valid() {
			c[s]++
		}
	}
	return c
}

// Census holds a per-state cell count indexed by State.
type Census [NumStates]int

// Total returns the number of cells counted.
func (c Census) Total() int {
	return c[Susceptible] + c[Infected] + c[Recovered] + c[Dead]
}

// Removed returns the combined Recovered and Dead count.
func (c Census) Removed() int { return c[Recovered] + c[Dead] }
