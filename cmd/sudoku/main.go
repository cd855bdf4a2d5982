// Command sudoku reads a Sudoku puzzle from stdin and solves it via the
// exact-cover engine in internal/xcover.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/xcover/internal/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	boxRows := flag.Int("box-rows", 3, "rows per box (box-rows * box-cols = puzzle size)")
	boxCols := flag.Int("box-cols", 3, "columns per box")
	flag.Parse()

	if isStdinTTY() {
		fmt.Println("Enter initial board as N lines of N characters.")
		fmt.Println("Use any character other than a valid digit/letter for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	b := sudoku.ReadBoardWithBoxes(os.Stdin, *boxRows, *boxCols)
	solved := b.Solve()

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution found; original puzzle:")
	}
	b.Print()
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
