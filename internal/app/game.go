//go:build ebiten

package app

import (
	"errors"

	"epigrid/internal/core"
	"epigrid/internal/render"
	"epigrid/internal/sims/sird"
	"epigrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sird engine to the ebiten.Game interface.
type Game struct {
	eng   *sird.Engine
	img   *ebiten.Image
	buf   []byte
	hud   *ui.HUD
	pacer *core.Pacer

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine.
func New(eng *sird.Engine, scale, daysPerSecond int) *Game {
	size := eng.Size()
	return &Game{
		eng:   eng,
		img:   ebiten.NewImage(size.W, size.H),
		buf:   make([]byte, 4*size.W*size.H),
		hud:   ui.NewHUD(eng, hudWidth),
		pacer: core.NewPacer(daysPerSecond),
		scale: scale,
		seed:  eng.Config().Seed,
	}
}

const hudWidth = 220

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.eng.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	if g.eng.Phase() == sird.Finished {
		return nil
	}
	if (!g.paused && g.pacer.Due()) || g.tickOnce {
		g.tickOnce = false
		if err := g.eng.Step(); err != nil && !errors.Is(err, sird.ErrFinished) {
			return err
		}
	}
	g.hud.Update(g.eng.Day(), g.eng.LastStats(), g.eng.Grid().Census(), g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillRGBA(g.buf, g.eng.Cells())
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	size := g.eng.Size()
	g.hud.Draw(screen, size.W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
