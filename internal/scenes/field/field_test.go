package field

import (
	"testing"

	"em-fdtd/internal/core"
	"em-fdtd/pkg/fdtd"
)

func smallConfig(preset string) Config {
	cfg := DefaultConfig()
	cfg.Preset = preset
	cfg.Width = 48
	cfg.Height = 32
	cfg.PML = 6
	cfg.Workers = 1
	cfg.LensRadius = 6
	return cfg
}

func TestPresetsAreRegistered(t *testing.T) {
	for _, name := range []string{"open", "periodic", "cavity", "lens"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("preset %s not registered", name)
		}
		sim := factory(map[string]string{"w": "24", "h": "20", "pml": "4", "workers": "1"})
		if sim.Name() != name {
			t.Fatalf("factory %s built %s", name, sim.Name())
		}
		if size := sim.Size(); size.W != 24 || size.H != 20 {
			t.Fatalf("%s: size %+v", name, size)
		}
	}
}

func TestPresetBoundaries(t *testing.T) {
	cases := map[string][]string{
		"open":     {"pml_xlow", "pml_xhigh", "pml_ylow", "pml_yhigh", "zbounds"},
		"periodic": {"pml_ylow", "pml_yhigh", "xbounds"},
		"cavity":   nil,
		"lens":     {"pml_xlow", "pml_xhigh", "pml_ylow", "pml_yhigh", "zbounds"},
	}
	for preset, want := range cases {
		s, err := New(smallConfig(preset))
		if err != nil {
			t.Fatalf("%s: %v", preset, err)
		}
		got := s.Boundaries()
		if len(got) != len(want) {
			t.Fatalf("%s: %d boundaries, want %d", preset, len(got), len(want))
		}
		for i := range want {
			if got[i].Name != want[i] {
				t.Fatalf("%s: boundary %d is %s, want %s", preset, i, got[i].Name, want[i])
			}
		}
	}
	s, _ := New(smallConfig("periodic"))
	if !s.Simulation().Boundaries().Periodic(fdtd.AxisX) {
		t.Fatal("periodic preset must wrap x")
	}
}

func TestLensRaisesPermittivity(t *testing.T) {
	s, err := New(smallConfig("lens"))
	if err != nil {
		t.Fatal(err)
	}
	g := s.Simulation().Grid()
	if got := g.Permittivity(24, 16, 0); got != 4 {
		t.Fatalf("lens centre permittivity %g, want 4", got)
	}
	if got := g.Permittivity(2, 2, 0); got != 1 {
		t.Fatalf("corner permittivity %g, want 1", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := smallConfig("open")
	cfg.Component = "Bx"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for an unknown component")
	}
	cfg = smallConfig("mirror")
	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
	cfg = smallConfig("open")
	cfg.Width = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for an empty grid")
	}
}

func TestPlaceSourceAndFrame(t *testing.T) {
	s, err := New(smallConfig("open"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.PlaceSource(20, 10) {
		t.Fatal("source inside the grid rejected")
	}
	if s.PlaceSource(48, 10) || s.PlaceSource(3, -1) {
		t.Fatal("source outside the grid accepted")
	}
	if got := len(s.Sources()); got != 1 {
		t.Fatalf("%d sources after one accepted placement", got)
	}
	for i := 0; i < 15; i++ {
		s.Step()
	}
	frame := s.Frame()
	if len(frame) != 48*32 {
		t.Fatalf("frame length %d", len(frame))
	}
	peak := float32(0)
	for _, v := range frame {
		if v < -1 || v > 1 {
			t.Fatalf("frame value %g out of range", v)
		}
		peak = max(peak, v, -v)
	}
	if peak < 0.99 {
		t.Fatalf("normalised frame peaks at %g", peak)
	}
	if s.FrameScale() <= fdtd.NormEpsilon {
		t.Fatalf("frame scale %g", s.FrameScale())
	}
}

func TestResetPlacesSeededSources(t *testing.T) {
	cfg := smallConfig("cavity")
	cfg.Sources = 3
	a, _ := New(cfg)
	b, _ := New(cfg)
	a.PlaceSource(1, 1)
	a.Step()
	a.Reset(7)
	b.Reset(7)
	if a.Simulation().Time() != 0 {
		t.Fatalf("reset kept time %d", a.Simulation().Time())
	}
	pa, pb := a.Sources(), b.Sources()
	if len(pa) != 3 || len(pb) != 3 {
		t.Fatalf("reset placed %d and %d sources, want 3", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("source %d differs for the same seed: %v vs %v", i, pa[i], pb[i])
		}
		if pa[i].X < cfg.PML || pa[i].X >= cfg.Width-cfg.PML || pa[i].Y < cfg.PML || pa[i].Y >= cfg.Height-cfg.PML {
			t.Fatalf("random source %v inside the margin", pa[i])
		}
	}
}

func TestParameterSetters(t *testing.T) {
	s, _ := New(smallConfig("open"))
	if !s.SetFloatParameter("period", 500) || s.cfg.Period != 200 {
		t.Fatalf("period not clamped: %g", s.cfg.Period)
	}
	if !s.SetFloatParameter("amplitude", 2) || s.cfg.Amplitude != 2 {
		t.Fatal("amplitude not applied")
	}
	if s.SetFloatParameter("pulse", 2) || s.SetIntParameter("period", 2) {
		t.Fatal("setter accepted a mismatched type")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("setter accepted an unknown key")
	}

	s.PlaceSource(20, 20)
	s.Step()
	before := s.Simulation().Boundaries().PMLCells()
	if !s.SetIntParameter("pml", 2) {
		t.Fatal("pml not adjustable")
	}
	if s.Simulation().Sources().Len() != 0 {
		t.Fatal("changing the PML must rebuild the scene")
	}
	s.Step()
	if after := s.Simulation().Boundaries().PMLCells(); after >= before || after == 0 {
		t.Fatalf("absorbing cells %d after thinning from %d", after, before)
	}
	p, ok := s.Parameters().Lookup("pml")
	if !ok || p.Value != "2" {
		t.Fatalf("snapshot reports pml %+v", p)
	}
}

func TestCycleComponent(t *testing.T) {
	s, _ := New(smallConfig("open"))
	seen := map[fdtd.Component]bool{}
	for i := 0; i < 6; i++ {
		seen[s.CycleComponent()] = true
	}
	if len(seen) != 6 || s.Component() != fdtd.Ez {
		t.Fatalf("cycled through %d components, ended on %v", len(seen), s.Component())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"preset":    "lens",
		"w":         "120",
		"pml":       "0",
		"period":    "-3",
		"pulse":     "4",
		"component": "Hz",
	})
	if cfg.Preset != "lens" || cfg.Width != 120 || cfg.Height != 400 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.PML != 0 || cfg.Period != 20 || cfg.Pulse != 4 || cfg.Component != "Hz" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
