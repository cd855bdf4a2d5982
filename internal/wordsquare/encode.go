// Package wordsquare encodes n x n word square construction as an exact
// cover problem: every row and every column must spell a word from the
// dictionary, and every cell must end up with exactly one letter.
//
// The trick, carried over from the original solver, is to give every
// cell two independent item slots, a "horizontal" one and a "vertical"
// one. Placing a word across a row asserts the correct letter in each
// of its cells' horizontal slots and, for every other letter of the
// alphabet, asserts that letter in the vertical slots — standing in for
// "whatever word ends up running through this cell vertically, it is
// not this letter". The column placement that actually supplies the
// real vertical letter does the same in reverse. Every slot therefore
// gets covered exactly once: either as the word's own assertion or as
// one of the 25 exclusions contributed by the word crossing it.
package wordsquare

import (
	"fmt"
	"strings"

	"github.com/kpitt/xcover/internal/xcover"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func letterIndex(c byte) int {
	return strings.IndexByte(Alphabet, c)
}

// cellBase is the item id of the (row, col, 'A') slot, before choosing
// horizontal or vertical and before adding the letter offset.
func cellBase(n, row, col int) int {
	return len(Alphabet) * (row*n + col)
}

// Encode builds the exact-cover matrix for an n x n word square using
// words, filtered to those exactly n letters long and composed only of
// A-Z. Every filtered word contributes one option per row it could fill
// and one option per column it could fill.
func Encode(n int, words []string) (*xcover.Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("wordsquare: n must be positive, got %d", n)
	}
	vOff := n * n * len(Alphabet)

	filtered := filterWords(n, words)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("wordsquare: no %d-letter words available", n)
	}

	// Each word contributes 2n options (n row placements, n column
	// placements), each covering exactly n*len(Alphabet) items (one
	// correct slot plus len(Alphabet)-1 exclusions, per cell).
	maxCells := len(filtered) * 2 * n * n * len(Alphabet)
	m := xcover.NewMatrix(2*vOff, 0, maxCells)

	for _, word := range filtered {
		for row := 0; row < n; row++ {
			if err := m.AddOption(rowOption(n, vOff, row, word)); err != nil {
				return nil, err
			}
		}
		for col := 0; col < n; col++ {
			if err := m.AddOption(colOption(n, vOff, col, word)); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func filterWords(n int, words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		w = strings.ToUpper(w)
		if len(w) != n || seen[w] {
			continue
		}
		ok := true
		for i := 0; i < len(w); i++ {
			if letterIndex(w[i]) < 0 {
				ok = false
				break
			}
		}
		if ok {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func rowOption(n, vOff, row int, word string) []int {
	option := make([]int, 0, n*len(Alphabet))
	for col := 0; col < n; col++ {
		base := cellBase(n, row, col)
		correct := letterIndex(word[col])
		option = append(option, base+correct)
		for letter := 0; letter < len(Alphabet); letter++ {
			if letter != correct {
				option = append(option, vOff+base+letter)
			}
		}
	}
	return option
}

func colOption(n, vOff, col int, word string) []int {
	option := make([]int, 0, n*len(Alphabet))
	for row := 0; row < n; row++ {
		base := cellBase(n, row, col)
		correct := letterIndex(word[row])
		option = append(option, vOff+base+correct)
		for letter := 0; letter < len(Alphabet); letter++ {
			if letter != correct {
				option = append(option, base+letter)
			}
		}
	}
	return option
}

// Decode turns a solution's chosen options back into an n x n grid of
// letters. Each option is either a row placement (n ids below vOff, the
// rest at or above it) or a column placement (the reverse); only the
// option's own n assertions — the ones that name a real letter rather
// than excluding one — are needed to recover that row or column.
func Decode(options [][]int, n int) [][]byte {
	vOff := n * n * len(Alphabet)
	grid := make([][]byte, n)
	for i := range grid {
		grid[i] = make([]byte, n)
	}

	for _, ids := range options {
		lowCount := 0
		for _, id := range ids {
			if id < vOff {
				lowCount++
			}
		}
		if lowCount == n {
			for _, id := range ids {
				if id >= vOff {
					continue
				}
				row, col, letter := id/len(Alphabet)/n, (id/len(Alphabet))%n, id%len(Alphabet)
				grid[row][col] = Alphabet[letter]
			}
		} else {
			for _, id := range ids {
				if id < vOff {
					continue
				}
				local := id - vOff
				row, col, letter := local/len(Alphabet)/n, (local/len(Alphabet))%n, local%len(Alphabet)
				grid[row][col] = Alphabet[letter]
			}
		}
	}
	return grid
}
