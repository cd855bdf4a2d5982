package pentomino

import "github.com/kpitt/xcover/internal/xcover"

// Solve returns the first complete tiling found, or nil if the board
// cannot be tiled. ok reports whether a tiling was found.
func Solve() (all []Placement, ok bool) {
	m, err := Encode()
	if err != nil {
		panic(err) // encoder bug: Encode's own bookkeeping should never exceed capacity
	}

	var found []Placement
	m.SetSolutionCallback(func(options [][]int) {
		found = Decode(options)
	})
	count, _ := m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: 1})
	return found, count > 0
}

// CountSolutions returns the number of distinct tilings, stopping early
// once max are found if max > 0.
func CountSolutions(max int) (int, error) {
	m, err := Encode()
	if err != nil {
		return 0, err
	}
	n, _ := m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: max})
	return n, nil
}
