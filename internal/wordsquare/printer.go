package wordsquare

import "github.com/fatih/color"

// Print renders a solved word square, one row per line, in the same
// bold-white style the sudoku and queens boards use.
func Print(grid []string) {
	solved := color.New(color.Bold, color.FgHiWhite)
	for _, row := range grid {
		solved.Println(row)
	}
}
