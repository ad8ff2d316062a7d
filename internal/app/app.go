//go:build ebiten

package app

import (
	"fmt"

	"em-fdtd/internal/core"
	"em-fdtd/internal/render"
	"em-fdtd/internal/ui"
	"em-fdtd/pkg/fdtd"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type componentCycler interface {
	CycleComponent() fdtd.Component
}

// Game adapts a field scene to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	vp      core.Viewport
	pacer   *core.Pacer

	blur     int
	palette  render.Palette
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		palette = render.PaletteGlow
	}
	return &Game{
		sim:      sim,
		painter:  render.NewFieldPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		vp:       core.NewViewport(size, cfg.Scale),
		pacer:    core.NewPacer(cfg.StepRate, cfg.MaxSteps),
		blur:     min(max(cfg.Blur, 0), render.MaxBlur),
		palette:  palette,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.blur = min(g.blur+1, render.MaxBlur)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.blur = max(g.blur-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.palette = g.palette.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if cycler, ok := g.sim.(componentCycler); ok {
			cycler.CycleComponent()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if placer, ok := g.sim.(core.SourcePlacer); ok {
			if x, y, inside := g.vp.ToGrid(ebiten.CursorPosition()); inside {
				placer.PlaceSource(x, y)
			}
		}
	}

	g.overlay.Update()
	fieldW, _ := g.vp.ScreenSize()
	g.hud.Update(fieldW)

	switch {
	case g.paused && g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for n := g.pacer.Due(); n > 0; n-- {
			g.sim.Step()
		}
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	g.hud.SetStatus(
		fmt.Sprintf("%s, %.0f fps", state, ebiten.ActualFPS()),
		fmt.Sprintf("blur %d, palette %s", g.blur, g.palette),
	)
	return nil
}

// Draw renders the current field.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Frame(), g.blur, g.palette, g.vp.Scale)
	g.overlay.Draw(screen)
	fieldW, _ := g.vp.ScreenSize()
	g.hud.Draw(screen, fieldW, g.vp.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.vp.ScreenSize()
	return w + g.hudWidth, h
}
