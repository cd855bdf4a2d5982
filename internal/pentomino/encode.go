package pentomino

import "github.com/kpitt/xcover/internal/xcover"

// BoardSize is the side length of the classic central-hole tiling.
const BoardSize = 8

// HoleCells are the four squares carved out of the center of the board.
// They are never covered by any option; Encode removes their items
// instead, following the same RemoveConstraint approach the original
// pentomino solver used to keep the reserved squares out of the search
// without special-casing placement generation.
var HoleCells = [4][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}}

func cellItem(r, c int) int { return r*BoardSize + c }

func pieceItem(piece int) int { return BoardSize*BoardSize + piece }

func isHole(r, c int) bool {
	for _, h := range HoleCells {
		if h[0] == r && h[1] == c {
			return true
		}
	}
	return false
}

// Encode builds the exact-cover matrix for tiling the 8x8 board, minus
// its central 2x2 hole, with one each of the twelve free pentominoes.
// Strict items are the 64 board cells plus the 12 piece identities; each
// option is one placement of one piece orientation, covering its five
// cells and that piece's identity item. The four hole cells are removed
// from the matrix before the caller solves it.
func Encode() (*xcover.Matrix, error) {
	options := placements()

	maxCells := 0
	for _, opt := range options {
		maxCells += len(opt)
	}

	strictCount := BoardSize*BoardSize + len(canonical)
	m := xcover.NewMatrix(strictCount, 0, maxCells)

	for _, opt := range options {
		if err := m.AddOption(opt); err != nil {
			return nil, err
		}
	}

	for _, h := range HoleCells {
		if err := m.RemoveItem(cellItem(h[0], h[1])); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// placements enumerates every (piece, orientation, position) option: five
// cell items plus the piece's own identity item, skipping any placement
// that would overlap the central hole.
func placements() [][]int {
	var options [][]int
	for piece, shape := range canonical {
		for _, orientation := range orientations(shape) {
			maxR, maxC := 0, 0
			for _, p := range orientation {
				if p.r > maxR {
					maxR = p.r
				}
				if p.c > maxC {
					maxC = p.c
				}
			}
			for dr := 0; dr+maxR < BoardSize; dr++ {
				for dc := 0; dc+maxC < BoardSize; dc++ {
					option := make([]int, 0, len(orientation)+1)
					blocked := false
					for _, p := range orientation {
						r, c := p.r+dr, p.c+dc
						if isHole(r, c) {
							blocked = true
							break
						}
						option = append(option, cellItem(r, c))
					}
					if blocked {
						continue
					}
					option = append(option, pieceItem(piece))
					options = append(options, option)
				}
			}
		}
	}
	return options
}

// Placement is one piece's covered squares in a solved tiling.
type Placement struct {
	Piece int
	Cells [][2]int
}

// Decode recovers, for each option chosen in a solution, which piece was
// placed and which cells it covers. Options list their items in
// ascending id order with the piece item (the only id >= 64) last.
func Decode(options [][]int) []Placement {
	placements := make([]Placement, 0, len(options))
	for _, ids := range options {
		piece := ids[len(ids)-1] - BoardSize*BoardSize
		cells := make([][2]int, 0, len(ids)-1)
		for _, id := range ids[:len(ids)-1] {
			cells = append(cells, [2]int{id / BoardSize, id % BoardSize})
		}
		placements = append(placements, Placement{Piece: piece, Cells: cells})
	}
	return placements
}
