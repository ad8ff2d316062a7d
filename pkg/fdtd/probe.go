package fdtd

// Probe records one component at one cell after every step.
type Probe struct {
	Name      string
	Position  Position
	Component Component

	idx     int
	samples []float64
	next    int
	full    bool
	peak    float64
}

func newProbe(name string, pos Position, c Component, idx, capacity int) *Probe {
	if capacity < 1 {
		capacity = 1
	}
	return &Probe{
		Name:      name,
		Position:  pos,
		Component: c,
		idx:       idx,
		samples:   make([]float64, capacity),
	}
}

func (p *Probe) record(v float64) {
	p.samples[p.next] = v
	p.next++
	if p.next == len(p.samples) {
		p.next = 0
		p.full = true
	}
	if v < 0 {
		v = -v
	}
	if v > p.peak {
		p.peak = v
	}
}

// Samples returns the retained samples, oldest first.
func (p *Probe) Samples() []float64 {
	if !p.full {
		return append([]float64(nil), p.samples[:p.next]...)
	}
	out := make([]float64, 0, len(p.samples))
	out = append(out, p.samples[p.next:]...)
	return append(out, p.samples[:p.next]...)
}

// Latest returns the most recent sample, or zero before the first step.
func (p *Probe) Latest() float64 {
	if !p.full && p.next == 0 {
		return 0
	}
	i := p.next - 1
	if i < 0 {
		i = len(p.samples) - 1
	}
	return p.samples[i]
}

// Peak returns the largest absolute value seen since the probe was added.
func (p *Probe) Peak() float64 { return p.peak }
