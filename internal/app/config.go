package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scene string
	Scale int
	TPS   int
	Seed  int64

	// StepRate is the target number of simulation steps per second;
	// MaxSteps caps how many run in one frame.
	StepRate int
	MaxSteps int

	Blur     int
	Palette  string
	HUDWidth int

	// Options holds extra scene settings as comma-separated key=value pairs.
	Options string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:    "open",
		Scale:    2,
		TPS:      60,
		Seed:     42,
		StepRate: 60,
		MaxSteps: 4,
		Blur:     1,
		Palette:  "glow",
		HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random sources on reset")
	fs.IntVar(&c.StepRate, "steps", c.StepRate, "simulation steps per second")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "most simulation steps per frame")
	fs.IntVar(&c.Blur, "blur", c.Blur, "initial blur radius (0-10)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "colour palette: glow or signed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels, 0 hides it")
	fs.StringVar(&c.Options, "opts", c.Options, "scene options, e.g. w=300,h=200,pml=12,period=24")
}

// SceneOptions parses Options into the map handed to the scene factory.
// Malformed pairs are skipped.
func (c *Config) SceneOptions() map[string]string {
	opts := map[string]string{}
	for _, pair := range strings.Split(c.Options, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return opts
}
