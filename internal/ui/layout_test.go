package ui

import (
	"image"
	"math"
	"testing"

	"em-fdtd/internal/core"
	"em-fdtd/pkg/fdtd"
)

func TestBoundaryRect(t *testing.T) {
	vp := core.NewViewport(core.Size{W: 40, H: 30}, 2)
	cases := []struct {
		info fdtd.BoundaryInfo
		want image.Rectangle
		ok   bool
	}{
		{fdtd.BoundaryInfo{Kind: fdtd.PML, Axis: fdtd.AxisX, Lo: 0, Hi: 5}, image.Rect(0, 0, 10, 60), true},
		{fdtd.BoundaryInfo{Kind: fdtd.PML, Axis: fdtd.AxisX, Lo: 35, Hi: 40}, image.Rect(70, 0, 80, 60), true},
		{fdtd.BoundaryInfo{Kind: fdtd.PML, Axis: fdtd.AxisY, Lo: 0, Hi: 5}, image.Rect(0, 50, 80, 60), true},
		{fdtd.BoundaryInfo{Kind: fdtd.PML, Axis: fdtd.AxisY, Lo: 25, Hi: 30}, image.Rect(0, 0, 80, 10), true},
		{fdtd.BoundaryInfo{Kind: fdtd.Periodic, Axis: fdtd.AxisX, Lo: 0, Hi: 1}, image.Rect(0, 0, 2, 60), true},
		{fdtd.BoundaryInfo{Kind: fdtd.Periodic, Axis: fdtd.AxisZ, Lo: 0, Hi: 1}, image.Rectangle{}, false},
	}
	for i, tc := range cases {
		got, ok := boundaryRect(tc.info, vp)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("case %d: got %v ok=%v, want %v ok=%v", i, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAdjustTarget(t *testing.T) {
	ints := core.ParameterControl{Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 10, HasMin: true, HasMax: true}
	if v, ok := adjustTarget(ints, 4, 1); !ok || v != 6 {
		t.Fatalf("int step up gave %g ok=%v", v, ok)
	}
	if v, ok := adjustTarget(ints, 10, 1); ok || v != 10 {
		t.Fatalf("int at max gave %g ok=%v", v, ok)
	}
	if v, ok := adjustTarget(ints, 1, -1); !ok || v != 0 {
		t.Fatalf("int clamp at min gave %g ok=%v", v, ok)
	}
	floats := core.ParameterControl{Type: core.ParamTypeFloat}
	if v, ok := adjustTarget(floats, 1, -1); !ok || math.Abs(v-0.95) > 1e-12 {
		t.Fatalf("default float step gave %g ok=%v", v, ok)
	}
	if _, ok := adjustTarget(core.ParameterControl{Type: core.ParamTypeString}, 1, 1); ok {
		t.Fatal("string controls are not adjustable")
	}
	if floatPrecision(0.005) != 3 || floatPrecision(1) != 1 {
		t.Fatal("unexpected precision")
	}
}
