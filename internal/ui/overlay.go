//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"em-fdtd/internal/core"
	"em-fdtd/pkg/fdtd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sourceLister interface {
	Sources() []fdtd.Position
}

type boundaryLister interface {
	Boundaries() []fdtd.BoundaryInfo
}

var (
	// Premultiplied.
	pmlTint    = color.RGBA{R: 20, G: 35, B: 70, A: 70}
	seamTint   = color.RGBA{R: 45, G: 120, B: 70, A: 150}
	markerTint = color.RGBA{R: 220, G: 170, B: 35, A: 220}
)

// Overlay draws source markers and boundary regions on top of the field.
type Overlay struct {
	sim            core.Sim
	vp             core.Viewport
	showSources    bool
	showBoundaries bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{
		sim:         sim,
		vp:          core.NewViewport(sim.Size(), scale),
		showSources: true,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers: 1 for source markers, 2 for boundaries.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSources = !o.showSources
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBoundaries = !o.showBoundaries
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showBoundaries {
		if provider, ok := o.sim.(boundaryLister); ok {
			for _, b := range provider.Boundaries() {
				rect, ok := boundaryRect(b, o.vp)
				if !ok {
					continue
				}
				tint := pmlTint
				if b.Kind == fdtd.Periodic {
					tint = seamTint
				}
				o.fill(screen, rect, tint)
			}
		}
	}
	if o.showSources {
		if provider, ok := o.sim.(sourceLister); ok {
			arm := max(o.vp.Scale*2, 3)
			for _, p := range provider.Sources() {
				sx, sy := o.vp.ToScreen(p.X, p.Y)
				cx, cy := sx+o.vp.Scale/2, sy+o.vp.Scale/2
				o.fill(screen, image.Rect(cx-arm, cy, cx+arm+1, cy+1), markerTint)
				o.fill(screen, image.Rect(cx, cy-arm, cx+1, cy+arm+1), markerTint)
			}
		}
	}
}

func (o *Overlay) fill(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
