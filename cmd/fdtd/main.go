//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"em-fdtd/internal/app"
	"em-fdtd/internal/core"
	_ "em-fdtd/internal/scenes/field"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q (have %s)", cfg.Scene, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SceneOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("FDTD field - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
