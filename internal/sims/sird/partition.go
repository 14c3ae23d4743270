package sird

import "epigrid/internal/core"

// Block is the half-open row range [R0, R1) assigned to one worker.
type Block struct {
	ID     int
	R0, R1 int
}

// Rows returns the number of rows the block owns.
func (b Block) Rows() int { return b.R1 - b.R0 }

// Partition splits [0, height) into min(workers, height) contiguous blocks of
// height/blocks rows each. Leftover rows go to the last block, so no block is
// ever empty.
func Partition(height, workers int) []Block {
	if height <= 0 {
		return nil
	}
	n := workers
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	per := height / n
	blocks := make([]Block, n)
	for i := range blocks {
		r0 := i * per
		r1 := r0 + per
		if i == n-1 {
			r1 = height
		}
		blocks[i] = Block{ID: i, R0: r0, R1: r1}
	}
	return blocks
}

// View is a block-local copy of the grid: one ghost row above, the block's
// own rows, one ghost row below. Local row 0 and local row Rows()+1 are ghosts.
type View struct {
	block Block
	w     int
	cells []core.State
}

// Load fills the view for block b from the current buffer of g, reusing the
// view's backing storage when it is large enough. Ghost rows that fall
// outside the grid are Susceptible.
func (v *View) Load(g *core.StateGrid, b Block) {
	h := b.Rows() + 2
	need := h * g.W
	if cap(v.cells) < need {
		v.cells = make([]core.State, need)
	}
	v.cells = v.cells[:need]
	v.block = b
	v.w = g.W
	for lr := 0; lr < h; lr++ {
		dst := v.cells[lr*g.W : (lr+1)*g.W]
		if src := g.Row(b.R0 + lr - 1); src != nil {
			copy(dst, src)
			continue
		}
		for i := range dst {
			dst[i] = core.Susceptible
		}
	}
}

// Block returns the block the view was last loaded for.
func (v *View) Block() Block { return v.block }

// Dims returns the local height including both ghost rows, and the width.
func (v *View) Dims() (int, int) { return v.block.Rows() + 2, v.w }

// At returns the state at local coordinates.
func (v *View) At(row, col int) core.State { return v.cells[row*v.w+col] }

// GlobalRow maps a local owned row (1..Rows()) to its grid row.
func (v *View) GlobalRow(local int) int { return v.block.R0 + local - 1 }
