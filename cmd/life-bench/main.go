// life-bench runs the engine headless over a random soup and reports the
// stepping rate, optionally against the naive full-scan baseline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"neon-life/internal/core"
	"neon-life/internal/life"
	"neon-life/internal/patterns"
)

func main() {
	rows := flag.Int("rows", 200, "board rows")
	cols := flag.Int("cols", 266, "board columns")
	steps := flag.Int("steps", 1000, "generations to run")
	density := flag.Float64("density", 0.07, "alive probability of the initial soup")
	seed := flag.Int64("seed", 42, "soup seed")
	compare := flag.Bool("compare", false, "also time the naive full-scan stepper")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	rng := core.NewRNG(*seed).Source()
	layout := patterns.Soup(rng, *rows, *cols, *density)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("create profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	g := life.NewWithConfig(life.Config{Rows: *rows, Cols: *cols, MaxBackups: 0})
	g.ReplaceLayout(layout)

	start := time.Now()
	for i := 0; i < *steps; i++ {
		g.Step()
	}
	elapsed := time.Since(start)
	fmt.Printf("engine: %d steps of %dx%d in %v (%.0f steps/s), %d alive at the end\n",
		*steps, *rows, *cols, elapsed.Round(time.Millisecond),
		float64(*steps)/elapsed.Seconds(), g.AliveCount())

	if *compare {
		width := *cols
		n := life.NewNaive(*rows, width)
		for r := range layout {
			copy(n.Values()[r*width:(r+1)*width], layout[r])
		}
		start = time.Now()
		for i := 0; i < *steps; i++ {
			n.Step()
		}
		elapsed = time.Since(start)
		fmt.Printf("naive:  %d steps in %v (%.0f steps/s)\n",
			*steps, elapsed.Round(time.Millisecond), float64(*steps)/elapsed.Seconds())
	}
}
