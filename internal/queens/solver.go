package queens

import "github.com/kpitt/xcover/internal/xcover"

// Solutions returns every placement of n non-attacking queens on an n x n
// board, each as a list of (row, col) pairs. If max > 0, the search stops
// once max solutions have been found.
func Solutions(n int, max int) [][][2]int {
	m := Encode(n)

	var found [][][2]int
	m.SetSolutionCallback(func(options [][]int) {
		found = append(found, Decode(options, n))
	})
	m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: max})
	return found
}

// CountSolutions returns the total number of n-queens solutions.
func CountSolutions(n int) int {
	m := Encode(n)
	return m.Solve()
}
