package sudoku

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print renders the board with box-drawing borders, coloring given cells
// distinctly from cells the solver filled in, in the style of the
// teacher's puzzle.Print/board.Print.
func (b *Board) Print() {
	n := b.Size
	color.HiWhite(b.borderLine('┌', '┬', '╥', '┐'))
	for r := range n {
		if r != 0 {
			if r%b.BoxRows == 0 {
				color.HiWhite(b.borderLine('╞', '╪', '╬', '╡'))
			} else {
				color.HiWhite(b.borderLine('├', '┼', '╫', '┤'))
			}
		}
		b.printRow(r)
	}
	color.HiWhite(b.borderLine('└', '┴', '╨', '┘'))
}

func (b *Board) printRow(r int) {
	var line strings.Builder
	for c := range b.Size {
		if c != 0 && c%b.BoxCols == 0 {
			line.WriteString(color.HiWhiteString("║"))
		} else {
			line.WriteString(color.HiWhiteString("│"))
		}

		val := b.Cells[r][c]
		switch {
		case val == 0:
			line.WriteString(emptyColor.Sprintf(" %s ", cellGlyph(0)))
		case b.Given[r][c]:
			line.WriteString(givenColor.Sprintf(" %s ", cellGlyph(val)))
		default:
			line.WriteString(solvedColor.Sprintf(" %s ", cellGlyph(val)))
		}
	}
	line.WriteString(color.HiWhiteString("│"))
	fmt.Println(line.String())
}

func cellGlyph(val int) string {
	if val == 0 {
		return "·"
	}
	if val <= 9 {
		return fmt.Sprintf("%d", val)
	}
	// Sizes above 9 (e.g. 16x16 "super" sudoku) use letters A, B, ...
	return string(rune('A' + val - 10))
}

// borderLine builds one divider line of the right width for b.Size,
// using left/mid-minor/mid-major/right corner runes.
func (b *Board) borderLine(left, mid, major, right rune) string {
	var line strings.Builder
	line.WriteRune(left)
	for c := range b.Size {
		line.WriteString("───")
		if c == b.Size-1 {
			line.WriteRune(right)
		} else if (c+1)%b.BoxCols == 0 {
			line.WriteRune(major)
		} else {
			line.WriteRune(mid)
		}
	}
	return line.String()
}
