package fdtd

import "fmt"

// Position addresses one cell.
type Position struct {
	X, Y, Z int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Source is a registered point excitation.
type Source struct {
	ID       int
	Name     string
	Position Position
	Waveform Waveform

	idx  int
	last float64
}

// Last returns the value injected by the most recent step.
func (s *Source) Last() float64 { return s.last }

// SourceSet holds the point sources of a grid. Sources are never removed.
type SourceSet struct {
	grid    *Grid
	sources []*Source
	nextID  int
}

func newSourceSet(g *Grid) *SourceSet {
	return &SourceSet{grid: g}
}

// Add registers a continuous unit sine of the given period (seconds) at pos,
// driving Ez. It returns the source id.
func (s *SourceSet) Add(pos Position, period float64, name string) (int, error) {
	return s.AddWaveform(pos, NewWaveform(period), name)
}

// AddWaveform registers a source with an explicit waveform.
func (s *SourceSet) AddWaveform(pos Position, w Waveform, name string) (int, error) {
	if !s.grid.InBounds(pos.X, pos.Y, pos.Z) {
		return -1, fmt.Errorf("source %q at %v: %w", name, pos, ErrOutOfBounds)
	}
	if !(w.Period > 0) {
		return -1, fmt.Errorf("source %q: %w: period %g", name, ErrInvalidConfig, w.Period)
	}
	if !w.Component.valid() {
		return -1, fmt.Errorf("source %q: %w: component %v", name, ErrInvalidConfig, w.Component)
	}
	src := &Source{
		ID:       s.nextID,
		Name:     name,
		Position: pos,
		Waveform: w,
		idx:      s.grid.index(pos.X, pos.Y, pos.Z),
	}
	s.nextID++
	s.sources = append(s.sources, src)
	return src.ID, nil
}

// Len returns the number of registered sources.
func (s *SourceSet) Len() int { return len(s.sources) }

// Get returns the source with the given id.
func (s *SourceSet) Get(id int) (*Source, bool) {
	if id < 0 || id >= len(s.sources) {
		return nil, false
	}
	return s.sources[id], true
}

// All returns the sources in registration order.
func (s *SourceSet) All() []*Source {
	return append([]*Source(nil), s.sources...)
}

// inject adds every source's value at step t. Sources on a periodic seam
// plane also drive the other copy of that plane.
func (s *SourceSet) inject(t uint64, periodic [3]bool) {
	g := s.grid
	for _, src := range s.sources {
		v := src.Waveform.Value(t, g.dt)
		src.last = v
		f := g.field(src.Waveform.Component)
		f[src.idx] += v
		for _, twin := range g.seamTwins(src.Position, periodic) {
			f[twin] += v
		}
	}
}

// seamTwins returns the indices that alias pos across periodic seams,
// excluding pos itself.
func (g *Grid) seamTwins(pos Position, periodic [3]bool) []int {
	p := [3]int{pos.X, pos.Y, pos.Z}
	options := [3][]int{}
	twins := false
	for a := 0; a < 3; a++ {
		options[a] = []int{p[a]}
		n := g.shape[a]
		if !periodic[a] || n < 3 {
			continue
		}
		switch p[a] {
		case 0:
			options[a] = append(options[a], n-1)
			twins = true
		case n - 1:
			options[a] = append(options[a], 0)
			twins = true
		}
	}
	if !twins {
		return nil
	}
	self := g.index(pos.X, pos.Y, pos.Z)
	var out []int
	for _, z := range options[2] {
		for _, y := range options[1] {
			for _, x := range options[0] {
				if i := g.index(x, y, z); i != self {
					out = append(out, i)
				}
			}
		}
	}
	return out
}
