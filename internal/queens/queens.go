// Package queens encodes the N-queens problem as an exact-cover matrix:
// one strict item per row and column, one optional item per diagonal (two
// families, since a diagonal may go unused), and one option per square.
package queens

import "github.com/kpitt/xcover/internal/xcover"

// itemIDs assigns strict row/column identifiers first, then optional
// diagonal identifiers, in plain ascending order. The distillation's C++
// source interleaves row/column ids in "organ-pipe" order to shrink the
// search tree, but pairs that with a decode step its own comment admits
// is wrong; ascending order here needs no such repair (see DESIGN.md).
type itemIDs struct {
	n int
}

func (ids itemIDs) row(r int) int { return r }
func (ids itemIDs) col(c int) int { return ids.n + c }

// diagPos and diagNeg are the two independent diagonal families: "/"
// diagonals share r+c, "\" diagonals share r-c.
func (ids itemIDs) diagPos(r, c int) int {
	return 2*ids.n + (r + c)
}
func (ids itemIDs) diagNeg(r, c int) int {
	return 2*ids.n + (2*ids.n - 1) + (r - c + ids.n - 1)
}

func (ids itemIDs) strictCount() int   { return 2 * ids.n }
func (ids itemIDs) optionalCount() int { return 2 * (2*ids.n - 1) }

// Encode builds the exact-cover matrix for an n x n board: n rows and n
// columns as strict items, and 2n-1 diagonals in each of two families as
// optional items (a queen's diagonals are "don't-care": a diagonal may
// carry zero or one queens, never forced to carry exactly one).
func Encode(n int) *xcover.Matrix {
	ids := itemIDs{n: n}
	maxCells := n * n * 4
	m := xcover.NewMatrix(ids.strictCount(), ids.optionalCount(), maxCells)

	for r := range n {
		for c := range n {
			items := []int{ids.row(r), ids.col(c), ids.diagPos(r, c), ids.diagNeg(r, c)}
			if err := m.AddOption(items); err != nil {
				panic(err) // encoder bug: bounds and capacity are computed above
			}
		}
	}
	return m
}

// Decode recovers the (row, col) of each placed queen from one solution's
// list of options. Every option's row item is < n and its column item is
// in [n, 2n); both are always present since row/col are strict, so they
// are always the two smallest ids in each option's sorted list.
func Decode(options [][]int, n int) [][2]int {
	queens := make([][2]int, len(options))
	for i, ids := range options {
		row, col := ids[0], ids[1]-n
		queens[i] = [2]int{row, col}
	}
	return queens
}
