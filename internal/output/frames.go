package output

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"epigrid/internal/render"
	"epigrid/internal/sims/sird"
)

// FrameName returns the file name of the frame for day.
func FrameName(day int) string { return fmt.Sprintf("frame_%04d.png", day) }

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// FrameWriter writes one PNG per day into a directory.
type FrameWriter struct {
	dir     string
	painter *render.Painter
	enc     png.Encoder
}

// NewFrameWriter prepares a writer for w*h grids drawn at scale pixels per cell.
// The directory must already exist.
func NewFrameWriter(dir string, w, h, scale int) *FrameWriter {
	return &FrameWriter{
		dir:     dir,
		painter: render.NewPainter(w, h, scale),
		enc:     png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Emit encodes the day's grid to dir/frame_NNNN.png.
func (f *FrameWriter) Emit(_ context.Context, d sird.Day) error {
	img := f.painter.Paint(d.Grid.Cells())
	if img == nil {
		return fmt.Errorf("frame %d: grid is %dx%d, writer expects %v", d.Index, d.Grid.W, d.Grid.H, f.painter.Bounds())
	}
	path := filepath.Join(f.dir, FrameName(d.Index))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := f.enc.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode frame %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close frame %s: %w", path, err)
	}
	return nil
}
