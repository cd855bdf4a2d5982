package sudoku

import "github.com/kpitt/xcover/internal/xcover"

// Solve encodes b as an exact-cover matrix, finds the first solution, and
// writes it back into b. It reports whether a solution was found.
func (b *Board) Solve() bool {
	m, err := b.Encode()
	if err != nil {
		panic(err) // encoder bug: Encode's own bookkeeping should never exceed capacity
	}

	solved := false
	m.SetSolutionCallback(func(options [][]int) {
		b.Decode(options)
		solved = true
	})
	m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: 1})
	return solved
}

// CountSolutions returns the number of distinct solutions for b, up to
// max (0 means unbounded). Useful for judging whether a puzzle is
// well-formed (exactly one solution).
func (b *Board) CountSolutions(max int) (int, error) {
	m, err := b.Encode()
	if err != nil {
		return 0, err
	}
	count, _ := m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: max})
	return count, nil
}
