package field

import (
	"fmt"
	"log"

	"em-fdtd/internal/core"
	pcore "em-fdtd/pkg/core"
	"em-fdtd/pkg/fdtd"
)

// Scene drives an FDTD simulation for the viewer: it owns the grid built from
// a preset, turns clicks into sources and exports the displayed plane.
type Scene struct {
	cfg       Config
	sim       *fdtd.Simulation
	component fdtd.Component
	frame     []float32
	scale     float64
	seed      int64
	placed    int
}

// New builds a scene from cfg.
func New(cfg Config) (*Scene, error) {
	c, err := fdtd.ParseComponent(cfg.Component)
	if err != nil {
		return nil, err
	}
	if _, ok := presets[cfg.Preset]; !ok {
		return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
	}
	s := &Scene{cfg: cfg, component: c}
	sim, err := s.build()
	if err != nil {
		return nil, err
	}
	s.sim = sim
	s.frame = make([]float32, cfg.Width*cfg.Height)
	return s, nil
}

func (s *Scene) build() (*fdtd.Simulation, error) {
	gcfg := fdtd.DefaultConfig()
	gcfg.Nx = s.cfg.Width
	gcfg.Ny = s.cfg.Height
	gcfg.Spacing = s.cfg.Spacing
	gcfg.Workers = s.cfg.Workers
	sim, err := fdtd.NewSimulation(gcfg)
	if err != nil {
		return nil, err
	}
	if err := presets[s.cfg.Preset](sim, s.cfg); err != nil {
		return nil, fmt.Errorf("preset %s: %w", s.cfg.Preset, err)
	}
	return sim, nil
}

// Name returns the preset name.
func (s *Scene) Name() string { return s.cfg.Preset }

// Size returns the plane dimensions.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset discards the fields and every source, rebuilds the preset and places
// cfg.Sources random sources chosen by seed.
func (s *Scene) Reset(seed int64) {
	sim, err := s.build()
	if err != nil {
		log.Printf("field: reset %s: %v", s.cfg.Preset, err)
		return
	}
	s.sim = sim
	s.seed = seed
	s.placed = 0

	margin := s.cfg.PML
	rng := pcore.NewRNG(seed)
	for i := 0; i < s.cfg.Sources; i++ {
		x, y := rng.Point(margin, margin, s.cfg.Width-margin, s.cfg.Height-margin)
		s.PlaceSource(x, y)
	}
}

// Step advances the simulation by one time step.
func (s *Scene) Step() { s.sim.Step() }

// Frame exports the displayed component. The returned slice is reused by the
// next call.
func (s *Scene) Frame() []float32 {
	s.scale = s.sim.ExtractInto(s.frame, s.component)
	return s.frame
}

// FrameScale returns the normalisation divisor of the last Frame.
func (s *Scene) FrameScale() float64 { return s.scale }

// PlaceSource adds a point source at grid cell (x, y) with the current
// period, amplitude and pulse settings. Rejected positions are logged and
// leave the scene unchanged.
func (s *Scene) PlaceSource(x, y int) bool {
	w := fdtd.NewWaveform(s.period())
	w.Amplitude = s.cfg.Amplitude
	if s.cfg.Pulse > 0 {
		w = w.Pulse(s.cfg.Pulse)
	}
	name := fmt.Sprintf("pointsource%d", s.placed)
	if _, err := s.sim.Sources().AddWaveform(fdtd.Position{X: x, Y: y}, w, name); err != nil {
		log.Printf("field: %v", err)
		return false
	}
	s.placed++
	return true
}

func (s *Scene) period() float64 {
	return s.cfg.Period * s.cfg.Spacing / fdtd.SpeedOfLight
}

// Sources returns the positions of all sources in placement order.
func (s *Scene) Sources() []fdtd.Position {
	all := s.sim.Sources().All()
	out := make([]fdtd.Position, len(all))
	for i, src := range all {
		out[i] = src.Position
	}
	return out
}

// Boundaries lists the boundary regions of the current preset.
func (s *Scene) Boundaries() []fdtd.BoundaryInfo { return s.sim.Boundaries().List() }

// Simulation exposes the underlying simulation.
func (s *Scene) Simulation() *fdtd.Simulation { return s.sim }

// Component returns the displayed component.
func (s *Scene) Component() fdtd.Component { return s.component }

// CycleComponent switches the display to the next of the six components.
func (s *Scene) CycleComponent() fdtd.Component {
	order := []fdtd.Component{fdtd.Ex, fdtd.Ey, fdtd.Ez, fdtd.Hx, fdtd.Hy, fdtd.Hz}
	for i, c := range order {
		if c == s.component {
			s.component = order[(i+1)%len(order)]
			return s.component
		}
	}
	s.component = fdtd.Ez
	return s.component
}
