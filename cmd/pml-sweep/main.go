package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	opts := defaultOptions()
	thicknessList := flag.String("thickness", "0,4,6,8,10,12,16,20", "comma-separated PML thicknesses in cells")
	periodList := flag.String("periods", "10,20,40", "comma-separated source periods in cells")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run in parallel")
	flag.IntVar(&opts.interior, "interior", opts.interior, "side of the region inside the absorbers")
	flag.IntVar(&opts.steps, "steps", opts.steps, "steps per scenario")
	flag.IntVar(&opts.gap, "gap", opts.gap, "distance from the probe to the absorber")
	flag.IntVar(&opts.cycles, "cycles", opts.cycles, "carrier cycles in the pulse")
	flag.Parse()

	thicknesses, err := parseInts(*thicknessList)
	if err != nil {
		log.Fatalf("thickness: %v", err)
	}
	periods, err := parseFloats(*periodList)
	if err != nil {
		log.Fatalf("periods: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d thicknesses x %d periods (%d workers, %d steps)\n", len(thicknesses), len(periods), *workers, opts.steps)
	start := time.Now()

	results, err := sweep(ctx, opts, thicknesses, periods, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].period != results[j].period {
			return results[i].period < results[j].period
		}
		return results[i].thickness < results[j].thickness
	})

	fmt.Printf("\n%8s %9s %12s %10s\n", "period", "thickness", "reflection", "dB")
	for _, r := range results {
		fmt.Printf("%8.1f %9d %12.3e %10.1f\n", r.period, r.thickness, r.reflection, r.decibels())
	}

	best := map[float64]result{}
	for _, r := range results {
		if r.thickness == 0 {
			continue
		}
		if b, ok := best[r.period]; !ok || r.reflection < b.reflection {
			best[r.period] = r
		}
	}
	fmt.Printf("\nBest per period (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, p := range periods {
		if b, ok := best[p]; ok {
			fmt.Printf("  period %.1f: %d cells, reflection %.3e\n", p, b.thickness, b.reflection)
		}
	}
}

// sweep runs one reference scenario per period and one absorbing scenario per
// (thickness, period) pair, at most workers at a time.
func sweep(ctx context.Context, opts options, thicknesses []int, periods []float64, workers int) ([]result, error) {
	refs := make([][]float64, len(periods))
	traces := make([][][]float64, len(periods))
	for i := range traces {
		traces[i] = make([][]float64, len(thicknesses))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for pi, period := range periods {
		g.Go(func() error {
			trace, err := probeTrace(ctx, opts, opts.referenceMargin(), 0, period)
			if err != nil {
				return fmt.Errorf("reference period %.1f: %w", period, err)
			}
			refs[pi] = trace
			log.Printf("reference period=%.1f done", period)
			return nil
		})
		for ti, thickness := range thicknesses {
			g.Go(func() error {
				trace, err := probeTrace(ctx, opts, thickness, thickness, period)
				if err != nil {
					return fmt.Errorf("thickness %d period %.1f: %w", thickness, period, err)
				}
				traces[pi][ti] = trace
				log.Printf("thickness=%d period=%.1f done", thickness, period)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []result
	for pi, period := range periods {
		for ti, thickness := range thicknesses {
			out = append(out, result{
				thickness:  thickness,
				period:     period,
				reflection: reflection(traces[pi][ti], refs[pi]),
			})
		}
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative value %d", v)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("non-positive value %g", v)
		}
		out = append(out, v)
	}
	return out, nil
}
