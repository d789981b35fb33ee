// Command heatflow runs the heat-distribution simulation in
// parabulk/examples/heatflow and prints its convergence trace plus
// the two bulk-sequence diagnostics (hottest row, heat profile).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/exascience/parabulk/examples/heatflow"
)

func main() {
	m := flag.Int("m", 1024, "grid rows")
	n := flag.Int("n", 1024, "grid columns")
	init := flag.Float64("init", 75, "initial interior temperature")
	top := flag.Float64("top", 0, "top border temperature")
	right := flag.Float64("right", 100, "right border temperature")
	bottom := flag.Float64("bottom", 100, "bottom border temperature")
	left := flag.Float64("left", 100, "left border temperature")
	flag.Parse()

	if *m <= 0 || *n <= 0 {
		log.Fatalf("heatflow: grid dimensions must be positive, got m=%d n=%d", *m, *n)
	}

	g := heatflow.NewGrid(*m, *n, *init, *top, *right, *bottom, *left)
	result := heatflow.Simulate(g, func(r heatflow.Result) {
		fmt.Printf("iterations: %6d, delta: %08.6f\n", r.Iterations, r.Delta)
	})
	fmt.Printf("converged after %d iterations (delta %.6f)\n", result.Iterations, result.Delta)

	row := heatflow.HottestRow(g.U)
	fmt.Printf("hottest interior row: %d\n", row)

	profile := heatflow.HeatProfile(g.U)
	fmt.Printf("heat profile (first 5 rows): %v\n", profile[:min(5, len(profile))])
}
