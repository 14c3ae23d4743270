package output

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"epigrid/internal/render"
	"epigrid/internal/sims/sird"
)

// VideoWriter appends every day as a JPEG frame of an MJPEG AVI file.
type VideoWriter struct {
	avi     mjpeg.AviWriter
	painter *render.Painter
	buf     bytes.Buffer
	opts    jpeg.Options
}

// NewVideoWriter creates path for w*h grids drawn at scale pixels per cell.
func NewVideoWriter(path string, w, h, scale, fps int) (*VideoWriter, error) {
	if fps <= 0 {
		fps = 10
	}
	p := render.NewPainter(w, h, scale)
	b := p.Bounds()
	avi, err := mjpeg.New(path, int32(b.Dx()), int32(b.Dy()), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &VideoWriter{avi: avi, painter: p, opts: jpeg.Options{Quality: 75}}, nil
}

// Emit encodes the day's grid and appends it to the video.
func (v *VideoWriter) Emit(_ context.Context, d sird.Day) error {
	img := v.painter.Paint(d.Grid.Cells())
	if img == nil {
		return fmt.Errorf("video frame %d: unexpected grid size %dx%d", d.Index, d.Grid.W, d.Grid.H)
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("encode video frame %d: %w", d.Index, err)
	}
	if err := v.avi.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("add video frame %d: %w", d.Index, err)
	}
	return nil
}

// Close finalizes the AVI index.
func (v *VideoWriter) Close() error { return v.avi.Close() }
