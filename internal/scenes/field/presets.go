package field

import (
	"fmt"
	"log"
	"math"

	"em-fdtd/internal/core"
	"em-fdtd/pkg/fdtd"
)

// preset installs boundaries and materials on a fresh simulation.
type preset func(sim *fdtd.Simulation, cfg Config) error

var presets = map[string]preset{
	"open":     openSpace,
	"periodic": periodicStrip,
	"cavity":   cavity,
	"lens":     lens,
}

func init() {
	for name := range presets {
		core.Register(name, factory(name))
	}
}

func factory(name string) core.Factory {
	return func(m map[string]string) core.Sim {
		cfg := FromMap(m)
		cfg.Preset = name
		scene, err := New(cfg)
		if err == nil {
			return scene
		}
		log.Printf("field: %v; falling back to the default %s scene", err, name)
		cfg = DefaultConfig()
		cfg.Preset = name
		scene, err = New(cfg)
		if err != nil {
			log.Fatalf("field: %v", err)
		}
		return scene
	}
}

// absorb lines both ends of every listed axis with a PML of the configured
// thickness.
func absorb(sim *fdtd.Simulation, thickness int, axes ...int) error {
	if thickness <= 0 {
		return nil
	}
	for _, axis := range axes {
		low, high := fdtd.Region{}, fdtd.Region{}
		switch axis {
		case fdtd.AxisX:
			low.X, high.X = fdtd.Range(0, thickness), fdtd.From(-thickness)
		case fdtd.AxisY:
			low.Y, high.Y = fdtd.Range(0, thickness), fdtd.From(-thickness)
		default:
			return fmt.Errorf("absorb: unsupported axis %d", axis)
		}
		name := "pml_" + []string{"x", "y"}[axis]
		if err := sim.Register(low, fdtd.PML, name+"low"); err != nil {
			return err
		}
		if err := sim.Register(high, fdtd.PML, name+"high"); err != nil {
			return err
		}
	}
	return nil
}

func openSpace(sim *fdtd.Simulation, cfg Config) error {
	if err := absorb(sim, cfg.PML, fdtd.AxisX, fdtd.AxisY); err != nil {
		return err
	}
	return sim.Register(fdtd.Region{Z: fdtd.At(0)}, fdtd.Periodic, "zbounds")
}

func periodicStrip(sim *fdtd.Simulation, cfg Config) error {
	if err := absorb(sim, cfg.PML, fdtd.AxisY); err != nil {
		return err
	}
	return sim.Register(fdtd.Region{X: fdtd.At(0)}, fdtd.Periodic, "xbounds")
}

func cavity(*fdtd.Simulation, Config) error { return nil }

// lens places a dielectric disc in the middle of an open scene. The disc is
// built from one-row slabs.
func lens(sim *fdtd.Simulation, cfg Config) error {
	if err := openSpace(sim, cfg); err != nil {
		return err
	}
	radius := min(cfg.LensRadius, min(cfg.Width, cfg.Height)/4)
	if radius < 1 {
		return nil
	}
	cx, cy := cfg.Width/2, cfg.Height/2
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= cfg.Height {
			continue
		}
		half := int(math.Sqrt(float64(radius*radius - dy*dy)))
		slab := fdtd.Region{X: fdtd.Range(cx-half, cx+half+1), Y: fdtd.At(y)}
		if err := sim.Grid().SetMaterial(slab, cfg.LensPermittivity, 1, "lens"); err != nil {
			return err
		}
	}
	return nil
}
