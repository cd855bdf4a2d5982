package wordsquare

import "github.com/kpitt/xcover/internal/xcover"

// Solve finds the first n x n word square buildable from words, returned
// as n strings (one per row). ok is false if no square exists.
func Solve(n int, words []string) (grid []string, ok bool) {
	m, err := Encode(n, words)
	if err != nil {
		return nil, false
	}

	var found [][]byte
	m.SetSolutionCallback(func(options [][]int) {
		found = Decode(options, n)
	})
	count, _ := m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: 1})
	if count == 0 {
		return nil, false
	}

	rows := make([]string, n)
	for i, row := range found {
		rows[i] = string(row)
	}
	return rows, true
}

// CountSolutions returns the number of distinct n x n word squares
// buildable from words, stopping early once max are found if max > 0.
func CountSolutions(n int, words []string, max int) (int, error) {
	m, err := Encode(n, words)
	if err != nil {
		return 0, err
	}
	count, _ := m.SolveWithStats(&xcover.SolveOptions{MaxSolutions: max})
	return count, nil
}
