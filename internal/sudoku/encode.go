package sudoku

import "github.com/kpitt/xcover/internal/xcover"

// Each candidate (row, col, value) is represented as one option covering
// four strict items: the cell, row-digit, column-digit, and box-digit
// constraints. For a given cell only the candidate matching its given
// value is added, which is equivalent to (and cheaper than) adding every
// candidate plus a dedicated "given" item to force the choice.

func (b *Board) cellItem(r, c int) int {
	return r*b.Size + c
}

func (b *Board) rowItem(r, v int) int {
	n2 := b.Size * b.Size
	return n2 + r*b.Size + (v - 1)
}

func (b *Board) colItem(c, v int) int {
	n2 := b.Size * b.Size
	return 2*n2 + c*b.Size + (v - 1)
}

func (b *Board) boxItem(box, v int) int {
	n2 := b.Size * b.Size
	return 3*n2 + box*b.Size + (v - 1)
}

// Encode builds the exact-cover matrix for b.
func (b *Board) Encode() (*xcover.Matrix, error) {
	n := b.Size
	strict := 4 * n * n
	maxCells := n * n * n * 4 // at most n^3 options, 4 cells each

	m := xcover.NewMatrix(strict, 0, maxCells)

	for r := range n {
		for c := range n {
			values := []int{b.Cells[r][c]}
			if b.Cells[r][c] == 0 {
				values = make([]int, n)
				for v := 1; v <= n; v++ {
					values[v-1] = v
				}
			}
			for _, v := range values {
				box := b.box(r, c)
				items := []int{b.cellItem(r, c), b.rowItem(r, v), b.colItem(c, v), b.boxItem(box, v)}
				if err := m.AddOption(items); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// Decode applies a solution (as reported by xcover's solution callback) to
// b. Each option's sorted item list always has the cell item (range
// [0, n^2)) as its smallest id and the row-digit item (range
// [n^2, 2n^2)) as its second-smallest, which is enough to recover
// (row, col, value) without keeping any side table of candidates.
func (b *Board) Decode(options [][]int) {
	for _, ids := range options {
		cellID, rowID := ids[0], ids[1]
		r, c := cellID/b.Size, cellID%b.Size
		v := (rowID-b.Size*b.Size)%b.Size + 1
		b.Cells[r][c] = v
	}
}
