package render

import (
	"fmt"
	"math"

	"github.com/crazy3lf/colorconv"
)

// MaxBlur is the largest accepted blur radius.
const MaxBlur = 10

// Palette selects how normalised field values become colours.
type Palette int

const (
	// PaletteGlow maps positive values black→white and negative values
	// red→white, then adds a bloom on bright pixels.
	PaletteGlow Palette = iota
	// PaletteSigned maps the value onto an HSV hue sweep with brightness
	// following the magnitude.
	PaletteSigned
	paletteCount
)

func (p Palette) String() string {
	switch p {
	case PaletteGlow:
		return "glow"
	case PaletteSigned:
		return "signed"
	default:
		return fmt.Sprintf("palette(%d)", int(p))
	}
}

// Next cycles to the following palette.
func (p Palette) Next() Palette { return (p + 1) % paletteCount }

// ParsePalette parses a palette name.
func ParsePalette(s string) (Palette, error) {
	for p := PaletteGlow; p < paletteCount; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return PaletteGlow, fmt.Errorf("unknown palette %q", s)
}

const signedTableSize = 512

// Pipeline turns a normalised field plane into RGBA pixels. Buffers are
// reused between frames; a Pipeline is not safe for concurrent use.
type Pipeline struct {
	w, h    int
	tmp     []float32
	blurred []float32
	signed  [signedTableSize][3]uint8
}

// NewPipeline allocates a pipeline for a w×h plane.
func NewPipeline(w, h int) *Pipeline {
	p := &Pipeline{
		w:       w,
		h:       h,
		tmp:     make([]float32, w*h),
		blurred: make([]float32, w*h),
	}
	for i := range p.signed {
		v := 2*float64(i)/(signedTableSize-1) - 1
		hue := 120 * (v + 1)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, math.Sqrt(math.Abs(v)))
		p.signed[i] = [3]uint8{r, g, b}
	}
	return p
}

// Size returns the plane dimensions the pipeline was built for.
func (p *Pipeline) Size() (int, int) { return p.w, p.h }

// Render blurs frame with the given radius, colours it and writes the pixels
// into dst (4 bytes per cell). frame rows grow upwards, dst rows grow
// downwards, so the image is flipped vertically.
func (p *Pipeline) Render(dst []byte, frame []float32, radius int, pal Palette) {
	if len(frame) != p.w*p.h || len(dst) < 4*p.w*p.h {
		return
	}
	src := frame
	if radius > 0 {
		Blur(p.blurred, p.tmp, frame, p.w, p.h, radius)
		src = p.blurred
	}
	for y := 0; y < p.h; y++ {
		row := (p.h - 1 - y) * p.w * 4
		for x := 0; x < p.w; x++ {
			var r, g, b uint8
			v := src[y*p.w+x]
			if pal == PaletteSigned {
				c := p.signed[signedIndex(v)]
				r, g, b = c[0], c[1], c[2]
			} else {
				r, g, b = GlowColor(v)
			}
			base := row + x*4
			dst[base+0] = r
			dst[base+1] = g
			dst[base+2] = b
			dst[base+3] = 0xff
		}
	}
}

func signedIndex(v float32) int {
	v = clamp(v, -1, 1)
	return int((v + 1) / 2 * (signedTableSize - 1))
}

// Blur writes the box average of src over a (2r+1)² window into dst, reading
// edge cells for samples that fall outside the plane. tmp must hold w*h
// values.
func Blur(dst, tmp, src []float32, w, h, radius int) {
	radius = min(max(radius, 0), MaxBlur)
	if radius == 0 {
		copy(dst, src)
		return
	}
	inv := 1 / float32(2*radius+1)
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var sum float32
			for k := -radius; k <= radius; k++ {
				sum += row[min(max(x+k, 0), w-1)]
			}
			tmp[y*w+x] = sum * inv
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k := -radius; k <= radius; k++ {
				sum += tmp[min(max(y+k, 0), h-1)*w+x]
			}
			dst[y*w+x] = sum * inv
		}
	}
}

// GlowColor maps a value in [-1, 1] to the glow palette.
func GlowColor(v float32) (r, g, b uint8) {
	v = clamp(v, -1, 1)
	var cr, cg, cb float32
	if v >= 0 {
		cr, cg, cb = v, v, v
	} else {
		cr, cg, cb = 1, -v, -v
	}
	bright := max(cr, cg, cb)
	gain := 1 + 1.5*smoothstep(0.6, 1, bright)
	return toByte(cr * gain), toByte(cg * gain), toByte(cb * gain)
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func toByte(v float32) uint8 {
	return uint8(clamp(v, 0, 1)*255 + 0.5)
}
