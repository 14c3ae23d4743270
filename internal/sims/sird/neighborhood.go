package sird

import "epigrid/internal/core"

// Buffer is a read-only rectangular block of cell states.
type Buffer interface {
	Dims() (rows, cols int)
	At(row, col int) core.State
}

// InfectedNeighbors counts Infected cells among the eight Moore neighbors of
// (row, col). Offsets outside the buffer are skipped; the lattice does not wrap.
func InfectedNeighbors(buf Buffer, row, col int) int {
	rows, cols := buf.Dims()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= cols {
				continue
			}
			if buf.At(r, c) == core.Infected {
				count++
			}
		}
	}
	return count
}

// GridBuffer adapts the current buffer of a StateGrid to Buffer.
type GridBuffer struct{ G *core.StateGrid }

// Dims returns the grid height and width.
func (b GridBuffer) Dims() (int, int) { return b.G.H, b.G.W }

// At returns the current state at (row, col).
func (b GridBuffer) At(row, col int) core.State { return b.G.At(col, row) }
