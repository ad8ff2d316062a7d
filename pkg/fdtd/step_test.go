package fdtd

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

func TestZeroFieldStaysZero(t *testing.T) {
	s := newTestSim(t, 20, 20)
	mustRegister(t, s, Region{X: Range(0, 4)}, PML, "pml")
	for i := 0; i < 25; i++ {
		s.Step()
	}
	if e := s.Grid().Energy(); e != 0 {
		t.Fatalf("energy %g without sources", e)
	}
	if s.Time() != 25 {
		t.Fatalf("time %d, want 25", s.Time())
	}
}

func TestDisturbanceSpreadsOneCellPerStep(t *testing.T) {
	s := newTestSim(t, 41, 41)
	w := NewWaveform(30 * s.DT())
	w.Phase = math.Pi / 2
	if _, err := s.Sources().AddWaveform(Position{X: 20, Y: 20}, w, "centre"); err != nil {
		t.Fatal(err)
	}
	g := s.Grid()
	for k := 1; k <= 12; k++ {
		s.Step()
		for _, c := range []Component{Ex, Ey, Ez, Hx, Hy, Hz} {
			p := g.Read(c)
			for y := 0; y < 41; y++ {
				for x := 0; x < 41; x++ {
					d := max(abs(x-20), abs(y-20))
					if d > k && p.At(x, y) != 0 {
						t.Fatalf("step %d: %v(%d,%d) = %g beyond reach", k, c, x, y, p.At(x, y))
					}
				}
			}
		}
		if k == 2 {
			sc := g.Courant()
			if got := g.At(Ez, 21, 20, 0); math.Abs(got-sc*sc) > 1e-12 {
				t.Fatalf("Ez(21,20) after two steps = %g, want %g", got, sc*sc)
			}
		}
	}
}

func TestSourceFrequencyDominates(t *testing.T) {
	cfg := testConfig(161, 161)
	cfg.Workers = 4
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddSource(Position{X: 80, Y: 80}, 40*s.DT(), "tone"); err != nil {
		t.Fatal(err)
	}
	p, err := s.AddProbe(Position{X: 80, Y: 80}, Ez, 160, "tone")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(context.Background(), 200); err != nil {
		t.Fatal(err)
	}

	samples := window.Hann(p.Samples())
	if len(samples) != 160 {
		t.Fatalf("probe kept %d samples", len(samples))
	}
	coeff := fourier.NewFFT(len(samples)).Coefficients(nil, samples)
	tone := cmplx.Abs(coeff[4])
	for k := 6; k <= 40; k++ {
		if other := cmplx.Abs(coeff[k]); tone < 3*other {
			t.Fatalf("bin %d (%g) competes with the source bin (%g)", k, other, tone)
		}
	}
}

func runPulse(t *testing.T, withPML bool) (peak, final, probePeak, lateMax float64) {
	t.Helper()
	s := newTestSim(t, 100, 100)
	if withPML {
		mustRegister(t, s, Region{X: Range(0, 12)}, PML, "left")
		mustRegister(t, s, Region{X: From(-12)}, PML, "right")
		mustRegister(t, s, Region{Y: Range(0, 12)}, PML, "bottom")
		mustRegister(t, s, Region{Y: From(-12)}, PML, "top")
	}
	w := NewWaveform(16 * s.Grid().Spacing() / SpeedOfLight).Pulse(3)
	if _, err := s.Sources().AddWaveform(Position{X: 50, Y: 50}, w, "pulse"); err != nil {
		t.Fatal(err)
	}
	probe, err := s.AddProbe(Position{X: 14, Y: 50}, Ez, 100, "edge")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		s.Step()
		peak = math.Max(peak, s.Grid().Energy())
	}
	for _, v := range probe.Samples() {
		lateMax = math.Max(lateMax, math.Abs(v))
	}
	return peak, s.Grid().Energy(), probe.Peak(), lateMax
}

func TestPMLAbsorbsOutgoingPulse(t *testing.T) {
	peak, final, probePeak, lateMax := runPulse(t, true)
	if peak == 0 || probePeak == 0 {
		t.Fatal("pulse never left the source")
	}
	if final > 0.01*peak {
		t.Fatalf("energy %g remains of peak %g", final, peak)
	}
	if lateMax > 0.01*probePeak {
		t.Fatalf("late field %g at the probe, peak %g", lateMax, probePeak)
	}
}

func TestClosedBoxKeepsEnergy(t *testing.T) {
	peak, final, _, _ := runPulse(t, false)
	if final < 0.3*peak {
		t.Fatalf("energy dropped to %g of peak %g without absorbers", final, peak)
	}
}

func TestPeriodicSeam(t *testing.T) {
	s := newTestSim(t, 40, 21)
	mustRegister(t, s, Region{X: At(0)}, Periodic, "wrap")
	w := NewWaveform(10 * s.Grid().Spacing() / SpeedOfLight).Pulse(2)
	if _, err := s.Sources().AddWaveform(Position{X: 37, Y: 10}, w, "near-edge"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		s.Step()
	}
	g := s.Grid()
	for y := 0; y < 21; y++ {
		for _, c := range []Component{Ex, Ey, Ez, Hx, Hy, Hz} {
			if g.At(c, 0, y, 0) != g.At(c, 39, y, 0) {
				t.Fatalf("%v differs across the seam at y=%d: %g vs %g", c, y, g.At(c, 0, y, 0), g.At(c, 39, y, 0))
			}
		}
	}
	if g.At(Ez, 2, 10, 0) == 0 {
		t.Fatal("wave did not wrap through the seam")
	}
	ref := math.Abs(g.At(Ez, 37, 10, 0))
	for k := 1; k <= 10; k++ {
		a := g.At(Ez, (37+k)%39, 10, 0)
		b := g.At(Ez, (37-k)%39, 10, 0)
		if math.Abs(a-b) > 1e-9*(1+ref) {
			t.Fatalf("offset %d: %g vs %g, ring is not symmetric", k, a, b)
		}
	}
}

func TestWorkersDoNotChangeResult(t *testing.T) {
	run := func(workers int) []float64 {
		cfg := testConfig(64, 64)
		cfg.Workers = workers
		s, err := NewSimulation(cfg)
		if err != nil {
			t.Fatal(err)
		}
		mustRegister(t, s, Region{X: Range(0, 8)}, PML, "left")
		mustRegister(t, s, Region{Y: From(-8)}, PML, "top")
		if _, err := s.AddSource(Position{X: 20, Y: 30}, 12*s.DT(), "a"); err != nil {
			t.Fatal(err)
		}
		if _, err := s.AddSource(Position{X: 45, Y: 10}, 7*s.DT(), "b"); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 80; i++ {
			s.Step()
		}
		out := make([]float64, 0, 2*64*64)
		out = append(out, s.Grid().field(Ez)...)
		return append(out, s.Grid().field(Hx)...)
	}
	serial, parallel := run(1), run(4)
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("value %d differs: %g serial, %g parallel", i, serial[i], parallel[i])
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestSim(t, 8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx, 10); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if s.Time() != 0 {
		t.Fatalf("time advanced to %d", s.Time())
	}
	if err := s.Run(context.Background(), 3); err != nil || s.Time() != 3 {
		t.Fatalf("run: time=%d err=%v", s.Time(), err)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
