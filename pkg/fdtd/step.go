package fdtd

import (
	"context"
	"fmt"
)

// State is the lifecycle state of a Simulation.
type State uint8

const (
	// Uninitialized accepts boundary and material registration.
	Uninitialized State = iota
	// Ready steps indefinitely; the grid setup is frozen.
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Simulation owns a grid with its boundaries, sources and probes, and the
// step counter. It is not safe for concurrent use; callers serialise Step,
// Extract and AddSource.
type Simulation struct {
	grid    *Grid
	bounds  *Boundaries
	sources *SourceSet
	probes  []*Probe

	nb      neighbors
	state   State
	t       uint64
	workers int
	rows    int
}

// NewSimulation allocates the grid described by cfg.
func NewSimulation(cfg Config) (*Simulation, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		grid:    g,
		bounds:  newBoundaries(g),
		workers: g.cfg.Workers,
		rows:    g.shape[1] * g.shape[2],
	}
	s.sources = newSourceSet(g)
	return s, nil
}

// Grid returns the field store.
func (s *Simulation) Grid() *Grid { return s.grid }

// Boundaries returns the boundary layer.
func (s *Simulation) Boundaries() *Boundaries { return s.bounds }

// Sources returns the source set.
func (s *Simulation) Sources() *SourceSet { return s.sources }

// State reports whether setup is still open.
func (s *Simulation) State() State { return s.state }

// Time returns the number of completed steps.
func (s *Simulation) Time() uint64 { return s.t }

// DT returns the time step in seconds.
func (s *Simulation) DT() float64 { return s.grid.dt }

// Elapsed returns the simulated time in seconds.
func (s *Simulation) Elapsed() float64 { return float64(s.t) * s.grid.dt }

// Register records a boundary region; see Boundaries.Register.
func (s *Simulation) Register(r Region, kind Kind, name string) error {
	return s.bounds.Register(r, kind, name)
}

// AddSource registers a continuous sine source driving Ez; see SourceSet.Add.
func (s *Simulation) AddSource(pos Position, period float64, name string) (int, error) {
	return s.sources.Add(pos, period, name)
}

// AddProbe attaches a detector that samples c at pos after every step and
// keeps the most recent capacity samples.
func (s *Simulation) AddProbe(pos Position, c Component, capacity int, name string) (*Probe, error) {
	if !s.grid.InBounds(pos.X, pos.Y, pos.Z) {
		return nil, fmt.Errorf("probe %q at %v: %w", name, pos, ErrOutOfBounds)
	}
	if !c.valid() {
		return nil, fmt.Errorf("probe %q: %w: component %v", name, ErrInvalidConfig, c)
	}
	p := newProbe(name, pos, c, s.grid.index(pos.X, pos.Y, pos.Z), capacity)
	s.probes = append(s.probes, p)
	return p, nil
}

// Prepare compiles the boundary layer and freezes setup. Step calls it on
// first use; calling it again has no effect.
func (s *Simulation) Prepare() {
	if s.state == Ready {
		return
	}
	s.bounds.compile()
	for a := 0; a < 3; a++ {
		if s.bounds.periodic[a] && s.grid.shape[a] >= 3 {
			s.grid.joinSeam(a)
		}
	}
	s.nb = buildNeighbors(s.grid.shape, s.bounds.periodic)
	s.grid.frozen = true
	s.state = Ready
}

// Step advances the fields by one time step: H from curl E, E from curl H,
// periodic seam synchronisation, source injection, then the step counter.
func (s *Simulation) Step() {
	s.Prepare()

	tile(s.workers, s.rows, s.updateH)
	tile(s.workers, len(s.bounds.cells), s.absorbH)

	tile(s.workers, s.rows, s.updateE)
	tile(s.workers, len(s.bounds.cells), s.absorbE)

	s.syncSeams()
	s.sources.inject(s.t, s.bounds.periodic)

	for _, p := range s.probes {
		p.record(s.grid.field(p.Component)[p.idx])
	}
	s.t++
}

// Run performs n steps, stopping early when ctx is cancelled.
func (s *Simulation) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
	}
	return nil
}

// syncSeams copies E from the far seam plane onto plane 0 and H from plane 0
// onto the far plane of every periodic axis, so both copies of the seam hold
// identical values.
func (s *Simulation) syncSeams() {
	g := s.grid
	for a := 0; a < 3; a++ {
		n := g.shape[a]
		if !s.bounds.periodic[a] || n < 3 {
			continue
		}
		offset := (n - 1) * g.stride[a]
		var plane box
		plane.hi = g.shape
		plane.hi[a] = 1
		plane.each(func(x, y, z int) {
			i := g.index(x, y, z)
			for c := 0; c < 3; c++ {
				g.e[c][i] = g.e[c][i+offset]
				g.h[c][i+offset] = g.h[c][i]
			}
		})
	}
}
