package core

import "sort"

// Size describes the dimensions of a field plane in cells.
type Size struct {
	W int
	H int
}

// Sim defines the contract a field scene exposes to the viewer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Frame returns the current plane normalised to [-1, 1], row-major with
	// rows along y and y growing upwards.
	Frame() []float32
}

// SourcePlacer is implemented by scenes that accept point sources at grid
// coordinates.
type SourcePlacer interface {
	PlaceSource(x, y int) bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available scene factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
