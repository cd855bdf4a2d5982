// Command pentomino tiles an 8x8 board with a central 2x2 hole using the
// twelve free pentominoes, via the exact-cover engine in internal/xcover.
package main

import (
	"flag"

	"github.com/fatih/color"
	"github.com/kpitt/xcover/internal/pentomino"
)

func main() {
	count := flag.Bool("count", false, "count all tilings instead of printing the first")
	flag.Parse()

	if *count {
		n, err := pentomino.CountSolutions(0)
		if err != nil {
			color.HiRed("error: %v", err)
			return
		}
		color.HiGreen("Found %d tiling(s)", n)
		return
	}

	placements, ok := pentomino.Solve()
	if !ok {
		color.HiRed("No tiling found")
		return
	}
	pentomino.Print(placements)
}
