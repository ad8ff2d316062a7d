package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("fdtd", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-scene", "lens", "-scale", "3", "-blur", "4", "-palette", "signed", "-opts", "w=120, pml=8,bad,=3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "lens" || cfg.Scale != 3 || cfg.Blur != 4 || cfg.Palette != "signed" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.StepRate != 60 || cfg.MaxSteps != 4 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	opts := cfg.SceneOptions()
	if len(opts) != 2 || opts["w"] != "120" || opts["pml"] != "8" {
		t.Fatalf("scene options %v", opts)
	}
}

func TestSceneOptionsEmpty(t *testing.T) {
	if opts := NewConfig().SceneOptions(); len(opts) != 0 {
		t.Fatalf("expected no options, got %v", opts)
	}
}
