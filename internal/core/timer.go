package core

import "time"

// Pacer decides how many simulation steps a frame should run so the field
// advances at a steady rate regardless of the display refresh.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxPerFrame int
	now         func() time.Time
}

// NewPacer targets stepsPerSecond, never running more than maxPerFrame steps
// in a single frame.
func NewPacer(stepsPerSecond, maxPerFrame int) *Pacer {
	if maxPerFrame <= 0 {
		maxPerFrame = 1
	}
	p := &Pacer{maxPerFrame: maxPerFrame, now: time.Now}
	p.SetRate(stepsPerSecond)
	p.accumulator = p.step
	return p
}

// SetRate changes the target step rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(stepsPerSecond int) {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 60
	}
	p.step = max(time.Second/time.Duration(stepsPerSecond), time.Nanosecond)
}

// Rate returns the target steps per second.
func (p *Pacer) Rate() int { return int(time.Second / p.step) }

// SetMaxPerFrame changes the per-frame cap.
func (p *Pacer) SetMaxPerFrame(n int) {
	if n <= 0 {
		n = 1
	}
	p.maxPerFrame = n
}

// MaxPerFrame returns the per-frame cap.
func (p *Pacer) MaxPerFrame() int { return p.maxPerFrame }

// Due returns the number of steps owed since the previous call. Time that
// would exceed the per-frame cap is dropped so a slow frame does not snowball.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	if n > p.maxPerFrame {
		p.accumulator = 0
		return p.maxPerFrame
	}
	p.accumulator -= time.Duration(n) * p.step
	return n
}

// Pause forgets accumulated time, e.g. while the viewer is paused.
func (p *Pacer) Pause() {
	p.accumulator = 0
	p.last = time.Time{}
}
