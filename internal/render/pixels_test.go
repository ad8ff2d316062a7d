package render

import (
	"math"
	"testing"
)

func TestBlurKeepsConstantPlane(t *testing.T) {
	w, h := 7, 5
	src := make([]float32, w*h)
	for i := range src {
		src[i] = 0.25
	}
	dst := make([]float32, w*h)
	tmp := make([]float32, w*h)
	for r := 0; r <= MaxBlur+2; r++ {
		Blur(dst, tmp, src, w, h, r)
		for i, v := range dst {
			if math.Abs(float64(v-0.25)) > 1e-6 {
				t.Fatalf("radius %d: dst[%d] = %g", r, i, v)
			}
		}
	}
}

func TestBlurSpreadsImpulse(t *testing.T) {
	w, h := 9, 9
	src := make([]float32, w*h)
	src[4*w+4] = 9
	dst := make([]float32, w*h)
	Blur(dst, make([]float32, w*h), src, w, h, 1)
	var sum float32
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := dst[y*w+x]
			sum += v
			inside := x >= 3 && x <= 5 && y >= 3 && y <= 5
			if inside && math.Abs(float64(v-1)) > 1e-6 {
				t.Fatalf("(%d,%d) = %g inside the window", x, y, v)
			}
			if !inside && v != 0 {
				t.Fatalf("(%d,%d) = %g outside the window", x, y, v)
			}
		}
	}
	if math.Abs(float64(sum-9)) > 1e-5 {
		t.Fatalf("interior blur changed the total to %g", sum)
	}
}

func TestGlowColor(t *testing.T) {
	cases := []struct {
		v       float32
		r, g, b uint8
	}{
		{0, 0, 0, 0},
		{1, 255, 255, 255},
		{-1, 255, 255, 255},
		{0.5, 128, 128, 128},
		{-0.001, 255, 1, 1},
		{4, 255, 255, 255},
	}
	for _, tc := range cases {
		r, g, b := GlowColor(tc.v)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("GlowColor(%g) = (%d,%d,%d), want (%d,%d,%d)", tc.v, r, g, b, tc.r, tc.g, tc.b)
		}
	}
	r1, _, _ := GlowColor(0.7)
	if r1 <= 178 {
		t.Fatalf("bright values must bloom, got %d", r1)
	}
}

func TestRenderFlipsRows(t *testing.T) {
	w, h := 3, 2
	frame := []float32{
		1, 0, 0, // y = 0, bottom of the screen
		0, 0, 0,
	}
	p := NewPipeline(w, h)
	dst := make([]byte, 4*w*h)
	p.Render(dst, frame, 0, PaletteGlow)
	bottomLeft := (1*w + 0) * 4
	if dst[bottomLeft] != 255 || dst[bottomLeft+3] != 255 {
		t.Fatalf("grid (0,0) must land on the bottom-left pixel, got %v", dst[bottomLeft:bottomLeft+4])
	}
	if dst[0] != 0 {
		t.Fatalf("top-left pixel lit: %v", dst[:4])
	}
}

func TestSignedPalette(t *testing.T) {
	p := NewPipeline(2, 1)
	dst := make([]byte, 8)
	p.Render(dst, []float32{-1, 1}, 0, PaletteSigned)
	if dst[0] != 255 || dst[1] != 0 || dst[2] != 0 {
		t.Fatalf("-1 should be red, got %v", dst[:3])
	}
	if dst[4] != 0 || dst[5] != 0 || dst[6] != 255 {
		t.Fatalf("+1 should be blue, got %v", dst[4:7])
	}
	p.Render(dst, []float32{0, 0}, 0, PaletteSigned)
	if dst[0] > 16 || dst[1] > 16 || dst[2] > 16 {
		t.Fatalf("zero should be dark, got %v", dst[:3])
	}
}

func TestParsePalette(t *testing.T) {
	for p := PaletteGlow; p < paletteCount; p++ {
		got, err := ParsePalette(p.String())
		if err != nil || got != p {
			t.Fatalf("%v: got %v err %v", p, got, err)
		}
	}
	if _, err := ParsePalette("rainbow"); err == nil {
		t.Fatal("expected an error")
	}
	if PaletteSigned.Next() != PaletteGlow {
		t.Fatal("palettes must cycle")
	}
}
