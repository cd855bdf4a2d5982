// Command queens solves the N-queens problem via the exact-cover engine
// in internal/xcover.
package main

import (
	"flag"
	"fmt"

	"github.com/fatih/color"
	"github.com/kpitt/xcover/internal/queens"
)

func main() {
	n := flag.Int("n", 8, "board size")
	all := flag.Bool("all", false, "enumerate every solution instead of stopping at the first")
	flag.Parse()

	max := 1
	if *all {
		max = 0
	}

	solutions := queens.Solutions(*n, max)
	if len(solutions) == 0 {
		color.HiRed("No solution for n=%d", *n)
		return
	}

	for i, placement := range solutions {
		color.HiBlue("Solution %d:", i+1)
		queens.Print(*n, placement)
		fmt.Println()
	}
	color.HiGreen("Found %d solution(s)", len(solutions))
}
