package core

import (
	"testing"
	"time"
)

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(Size{W: 10, H: 6}, 3)
	if w, h := v.ScreenSize(); w != 30 || h != 18 {
		t.Fatalf("screen size %dx%d", w, h)
	}
	x, y, ok := v.ToGrid(0, 0)
	if !ok || x != 0 || y != 5 {
		t.Fatalf("top-left pixel maps to (%d,%d) ok=%v, want (0,5)", x, y, ok)
	}
	x, y, ok = v.ToGrid(29, 17)
	if !ok || x != 9 || y != 0 {
		t.Fatalf("bottom-right pixel maps to (%d,%d) ok=%v, want (9,0)", x, y, ok)
	}
	if _, _, ok := v.ToGrid(30, 4); ok {
		t.Fatal("pixel right of the grid must be rejected")
	}
	if _, _, ok := v.ToGrid(-1, 4); ok {
		t.Fatal("negative pixel must be rejected")
	}
	for gy := 0; gy < 6; gy++ {
		for gx := 0; gx < 10; gx++ {
			sx, sy := v.ToScreen(gx, gy)
			bx, by, ok := v.ToGrid(sx+2, sy+2)
			if !ok || bx != gx || by != gy {
				t.Fatalf("cell (%d,%d) round-tripped to (%d,%d)", gx, gy, bx, by)
			}
		}
	}
	if x, y := v.Clamp(-3, 40); x != 0 || y != 5 {
		t.Fatalf("clamp gave (%d,%d)", x, y)
	}
}

func TestPacerDue(t *testing.T) {
	clock := time.Unix(100, 0)
	p := NewPacer(100, 5)
	p.now = func() time.Time { return clock }

	if n := p.Due(); n != 1 {
		t.Fatalf("first frame owes %d steps, want 1", n)
	}
	clock = clock.Add(25 * time.Millisecond)
	if n := p.Due(); n != 2 {
		t.Fatalf("25ms at 100/s owes %d steps, want 2", n)
	}
	clock = clock.Add(5 * time.Millisecond)
	if n := p.Due(); n != 1 {
		t.Fatalf("carry-over owes %d steps, want 1", n)
	}
	clock = clock.Add(time.Second)
	if n := p.Due(); n != 5 {
		t.Fatalf("slow frame owes %d steps, want the cap 5", n)
	}
	clock = clock.Add(time.Millisecond)
	if n := p.Due(); n != 0 {
		t.Fatalf("dropped backlog leaked %d steps", n)
	}
	if p.Rate() != 100 {
		t.Fatalf("rate %d", p.Rate())
	}
}

func TestPacerExtremeRate(t *testing.T) {
	clock := time.Unix(100, 0)
	p := NewPacer(60, 3)
	p.now = func() time.Time { return clock }
	p.SetRate(2_000_000_000)
	if p.Rate() != int(time.Second/time.Nanosecond) {
		t.Fatalf("rate %d, want the one-nanosecond ceiling", p.Rate())
	}
	p.Due()
	clock = clock.Add(time.Millisecond)
	if n := p.Due(); n != 3 {
		t.Fatalf("owed %d steps, want the cap 3", n)
	}
}

func TestRegistryNames(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must be ignored")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories must be ignored")
	}
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	names := Names()
	if names[0] != "aa-test" || names[len(names)-1] != "zz-test" {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestSnapshotLookupAndClamp(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("pml", "PML", 10, "")}},
		{Name: "b", Params: []Parameter{FloatParam("period", "Period", 12.5, "")}},
	}}
	p, ok := snap.Lookup("period")
	if !ok || p.Value != "12.5" || p.Type != ParamTypeFloat {
		t.Fatalf("lookup gave %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
	c := ParameterControl{Min: 1, Max: 4, HasMin: true, HasMax: true}
	if c.Clamp(0) != 1 || c.Clamp(9) != 4 || c.Clamp(2.5) != 2.5 {
		t.Fatal("clamp ignores bounds")
	}
}
