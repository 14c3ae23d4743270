package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"epigrid/internal/core"
)

// Palette maps every cell state to its fixed color, indexed by core.State.
var Palette = []color.RGBA{
	core.Susceptible: {R: 255, G: 255, B: 255, A: 255},
	core.Infected:    {R: 220, G: 20, B: 20, A: 255},
	core.Recovered:   {R: 30, G: 160, B: 60, A: 255},
	core.Dead:        {R: 0, G: 0, B: 0, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []core.State, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillRGBA writes the palette colors of cells into an RGBA pixel buffer of at
// least 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []core.State) {
	fillPaletteRGBA(buf, cells, Palette)
}

// Painter turns grids into images, reusing its pixel buffers between frames.
// It is not safe for concurrent use.
type Painter struct {
	w, h   int
	scale  int
	img    *image.RGBA
	scaled *image.RGBA
}

// NewPainter allocates a painter for a w*h grid drawn at scale pixels per cell.
func NewPainter(w, h, scale int) *Painter {
	if scale < 1 {
		scale = 1
	}
	p := &Painter{w: w, h: h, scale: scale, img: image.NewRGBA(image.Rect(0, 0, w, h))}
	if scale > 1 {
		p.scaled = image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	}
	return p
}

// Bounds returns the size of the images Paint produces.
func (p *Painter) Bounds() image.Rectangle {
	if p.scaled != nil {
		return p.scaled.Bounds()
	}
	return p.img.Bounds()
}

// Paint renders cells and returns the painter's image. The image is
// overwritten by the next call.
func (p *Painter) Paint(cells []core.State) *image.RGBA {
	if len(cells) != p.w*p.h {
		return nil
	}
	FillRGBA(p.img.Pix, cells)
	if p.scaled == nil {
		return p.img
	}
	draw.NearestNeighbor.Scale(p.scaled, p.scaled.Bounds(), p.img, p.img.Bounds(), draw.Src, nil)
	return p.scaled
}
