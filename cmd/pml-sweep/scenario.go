package main

import (
	"context"
	"math"

	"em-fdtd/pkg/fdtd"

	"gonum.org/v1/gonum/floats"
)

type options struct {
	interior int
	steps    int
	gap      int
	cycles   int
}

func defaultOptions() options {
	return options{interior: 100, steps: 260, gap: 10, cycles: 3}
}

// referenceMargin is wide enough that nothing reflected by the outer walls of
// the reference grid reaches the probe within the run.
func (o options) referenceMargin() int {
	return o.steps/2 + o.gap
}

type result struct {
	thickness  int
	period     float64
	reflection float64
}

func (r result) decibels() float64 {
	return 20 * math.Log10(r.reflection+1e-300)
}

// probeTrace runs a pulse from the centre of an interior×interior region
// surrounded by margin cells, the outer thickness of which absorb. It
// returns Ez at gap cells inside the left edge of the region for every step.
func probeTrace(ctx context.Context, o options, margin, thickness int, period float64) ([]float64, error) {
	cfg := fdtd.DefaultConfig()
	cfg.Nx = o.interior + 2*margin
	cfg.Ny = cfg.Nx
	cfg.Workers = 1
	sim, err := fdtd.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	if thickness > 0 {
		for _, r := range []fdtd.Region{
			{X: fdtd.Range(0, thickness)},
			{X: fdtd.From(-thickness)},
			{Y: fdtd.Range(0, thickness)},
			{Y: fdtd.From(-thickness)},
		} {
			if err := sim.Register(r, fdtd.PML, "pml"); err != nil {
				return nil, err
			}
		}
	}

	centre := margin + o.interior/2
	w := fdtd.NewWaveform(period * cfg.Spacing / fdtd.SpeedOfLight).Pulse(o.cycles)
	if _, err := sim.Sources().AddWaveform(fdtd.Position{X: centre, Y: centre}, w, "pulse"); err != nil {
		return nil, err
	}
	probe, err := sim.AddProbe(fdtd.Position{X: margin + o.gap, Y: centre}, fdtd.Ez, o.steps, "probe")
	if err != nil {
		return nil, err
	}
	if err := sim.Run(ctx, o.steps); err != nil {
		return nil, err
	}
	return probe.Samples(), nil
}

// reflection is the largest deviation of trace from the reference relative to
// the reference peak.
func reflection(trace, ref []float64) float64 {
	n := min(len(trace), len(ref))
	if n == 0 {
		return 0
	}
	diff := make([]float64, n)
	floats.SubTo(diff, trace[:n], ref[:n])
	peak := floats.Norm(ref[:n], math.Inf(1))
	if peak == 0 {
		return 0
	}
	return floats.Norm(diff, math.Inf(1)) / peak
}
