//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"epigrid/internal/core"
	"epigrid/internal/render"
	"epigrid/internal/sims/sird"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	padding    = 10
	swatch     = 10
)

// HUD renders the day counter, census and run settings to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	day    int
	stats  sird.DayStats
	census core.Census
	paused bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Update caches the latest day's figures.
func (h *HUD) Update(day int, stats sird.DayStats, census core.Census, paused bool) {
	if h == nil {
		return
	}
	h.day = day
	h.stats = stats
	h.census = census
	h.paused = paused
}

// Draw paints the panel at x offset panelX.
func (h *HUD) Draw(screen *ebiten.Image, panelX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := padding + lineHeight
	line := func(s string, col color.Color) {
		text.Draw(h.panel, s, basicfont.Face7x13, padding, y, col)
		y += lineHeight
	}

	title := fmt.Sprintf("%s  day %d", h.sim.Name(), h.day)
	if h.paused {
		title += "  [paused]"
	}
	line(title, color.White)
	line(fmt.Sprintf("new infected  %d", h.stats.NewInfected), color.White)
	line(fmt.Sprintf("infectious    %d", h.stats.Infectious), color.White)
	y += lineHeight / 2

	for s := core.State(0); s < core.NumStates; s++ {
		h.drawSwatch(padding, y-swatch, render.Palette[s])
		text.Draw(h.panel, fmt.Sprintf("%-12s %d", s, h.census[s]), basicfont.Face7x13, padding+swatch+6, y, color.White)
		y += lineHeight
	}
	y += lineHeight / 2

	for _, g := range h.snapshot.Groups {
		line(g.Name, color.RGBA{R: 180, G: 180, B: 200, A: 255})
		for _, p := range g.Params {
			line(fmt.Sprintf("  %s: %s", p.Label, p.Value), color.White)
		}
	}
	line("space pause  n step  r reset  q quit", color.RGBA{R: 140, G: 140, B: 140, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panelX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSwatch(x, y int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(swatch, swatch)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}
