package queens

import (
	"strings"

	"github.com/fatih/color"
)

// Print renders one n-queens solution as an n x n board, with queens
// marked in the same bold-white style the sudoku board uses for solved
// cells.
func Print(n int, placement [][2]int) {
	occupied := make(map[[2]int]bool, len(placement))
	for _, q := range placement {
		occupied[q] = true
	}

	queen := color.New(color.Bold, color.FgHiWhite)
	empty := color.New(color.FgHiBlack)

	for r := range n {
		var line strings.Builder
		for c := range n {
			if occupied[[2]int{r, c}] {
				line.WriteString(queen.Sprint("Q "))
			} else {
				line.WriteString(empty.Sprint(". "))
			}
		}
		color.HiWhite(strings.TrimRight(line.String(), " "))
	}
}
