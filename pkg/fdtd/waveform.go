package fdtd

import "math"

// Waveform describes the excitation a source adds every step.
type Waveform struct {
	// Period of the carrier in seconds.
	Period    float64
	Amplitude float64
	// Phase shift of the carrier in radians.
	Phase float64
	// Cycles limits the source to a Hanning-windowed pulse of that many
	// carrier periods. Zero keeps the source running forever.
	Cycles int
	// Component receives the excitation. The zero value drives Ex, so
	// NewWaveform selects Ez.
	Component Component
}

// NewWaveform returns a continuous unit sine of the given period driving Ez.
func NewWaveform(period float64) Waveform {
	return Waveform{Period: period, Amplitude: 1, Component: Ez}
}

// Pulse returns w limited to a windowed burst of cycles periods.
func (w Waveform) Pulse(cycles int) Waveform {
	w.Cycles = cycles
	return w
}

// Value returns the excitation at step t of a grid with time step dt.
func (w Waveform) Value(t uint64, dt float64) float64 {
	at := float64(t) * dt
	carrier := math.Sin(2*math.Pi*at/w.Period + w.Phase)
	if w.Cycles <= 0 {
		return w.Amplitude * carrier
	}
	span := float64(w.Cycles) * w.Period
	if at >= span {
		return 0
	}
	window := 0.5 * (1 - math.Cos(2*math.Pi*at/span))
	return w.Amplitude * window * carrier
}

// Steps returns the carrier period expressed in time steps.
func (w Waveform) Steps(dt float64) float64 {
	return w.Period / dt
}
