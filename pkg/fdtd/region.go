package fdtd

import "fmt"

type spanKind uint8

const (
	spanAll spanKind = iota
	spanRange
	spanFrom
	spanAt
)

// Span selects indices along one axis. Negative indices count from the far
// edge, so Range(-10, 0) is invalid while From(-10) is the last ten cells. The
// zero Span covers the whole axis.
type Span struct {
	kind        spanKind
	start, stop int
}

// All covers the whole axis.
func All() Span { return Span{} }

// Range covers [start, stop).
func Range(start, stop int) Span { return Span{kind: spanRange, start: start, stop: stop} }

// From covers [start, end of axis).
func From(start int) Span { return Span{kind: spanFrom, start: start} }

// At covers the single index i. A boundary region uses the At axis as its
// normal.
func At(i int) Span { return Span{kind: spanAt, start: i} }

func (s Span) String() string {
	switch s.kind {
	case spanRange:
		return fmt.Sprintf("%d:%d", s.start, s.stop)
	case spanFrom:
		return fmt.Sprintf("%d:", s.start)
	case spanAt:
		return fmt.Sprintf("%d", s.start)
	default:
		return ":"
	}
}

// resolve maps the span onto an axis of n cells as a half-open interval.
func (s Span) resolve(n int) (lo, hi int, ok bool) {
	switch s.kind {
	case spanAt:
		i := s.start
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return 0, 0, false
		}
		return i, i + 1, true
	case spanRange:
		lo, hi = clampIndex(s.start, n), clampIndex(s.stop, n)
	case spanFrom:
		lo, hi = clampIndex(s.start, n), n
	default:
		lo, hi = 0, n
	}
	return lo, hi, lo < hi
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// Region is an axis-aligned slab given as one Span per axis.
type Region struct {
	X, Y, Z Span
}

func (r Region) spans() [3]Span { return [3]Span{r.X, r.Y, r.Z} }

func (r Region) String() string {
	return fmt.Sprintf("[%s, %s, %s]", r.X, r.Y, r.Z)
}

// box is a resolved half-open index box.
type box struct {
	lo, hi [3]int
}

func (b box) contains(p [3]int) bool {
	for a := 0; a < 3; a++ {
		if p[a] < b.lo[a] || p[a] >= b.hi[a] {
			return false
		}
	}
	return true
}

func (b box) each(fn func(x, y, z int)) {
	for z := b.lo[2]; z < b.hi[2]; z++ {
		for y := b.lo[1]; y < b.hi[1]; y++ {
			for x := b.lo[0]; x < b.hi[0]; x++ {
				fn(x, y, z)
			}
		}
	}
}

// resolveRegion maps r onto a grid of the given shape. Regions that miss the
// grid along any axis are rejected.
func resolveRegion(r Region, shape [3]int, name string) (box, error) {
	var b box
	for a, s := range r.spans() {
		lo, hi, ok := s.resolve(shape[a])
		if !ok {
			return box{}, &RegionError{
				Name:    name,
				Axis:    a,
				Wrapped: fmt.Errorf("%w: span %s on %d cells", ErrOutOfBounds, s, shape[a]),
			}
		}
		b.lo[a], b.hi[a] = lo, hi
	}
	return b, nil
}
