//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter uploads rendered field frames into a single image.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pipe *Pipeline
}

// NewFieldPainter allocates a painter for a plane of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h), pipe: NewPipeline(w, h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit renders frame with the given blur and palette and draws it scaled onto
// dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, frame []float32, radius int, pal Palette, scale int) {
	if len(frame) != fp.w*fp.h {
		return
	}
	fp.pipe.Render(fp.buf, frame, radius, pal)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
