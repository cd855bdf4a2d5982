package pentomino

import (
	"strings"

	"github.com/fatih/color"
)

// palette assigns one distinguishable color per piece, indexed the same
// way as Names.
var palette = [12]*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
}

// Print renders a solved tiling as an 8x8 grid, one letter per piece in
// that piece's color, with the central hole shown as a dot.
func Print(placements []Placement) {
	var board [BoardSize][BoardSize]int
	for r := range board {
		for c := range board[r] {
			board[r][c] = -1
		}
	}
	for _, p := range placements {
		for _, cell := range p.Cells {
			board[cell[0]][cell[1]] = p.Piece
		}
	}
	for _, h := range HoleCells {
		board[h[0]][h[1]] = -2
	}

	for r := range board {
		var line strings.Builder
		for c := range board[r] {
			switch piece := board[r][c]; piece {
			case -2:
				line.WriteString(color.HiBlackString(". "))
			case -1:
				line.WriteString("? ")
			default:
				line.WriteString(palette[piece].Sprintf("%s ", Names[piece]))
			}
		}
		color.HiWhite(strings.TrimRight(line.String(), " "))
	}
}
