package sudoku

import (
	"strings"
	"testing"
)

func boardFromLines(t *testing.T, lines ...string) *Board {
	t.Helper()
	return ReadBoard(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestSolveClassicPuzzle(t *testing.T) {
	b := boardFromLines(t,
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	)

	if !b.Solve() {
		t.Fatal("Solve() = false, want true")
	}
	if !b.IsSolved() {
		t.Fatal("board not fully solved")
	}

	wantBox := [3][3]int{{5, 3, 4}, {6, 7, 2}, {1, 9, 8}}
	for r := range 3 {
		for c := range 3 {
			if got := b.Cells[r][c]; got != wantBox[r][c] {
				t.Errorf("Cells[%d][%d] = %d, want %d", r, c, got, wantBox[r][c])
			}
		}
	}
}

func TestSolveRejectsNothingButFindsUniqueSolution(t *testing.T) {
	b := boardFromLines(t,
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	)
	count, err := b.CountSolutions(2)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if count != 1 {
		t.Errorf("CountSolutions = %d, want 1", count)
	}
}

func TestLatinSquare2x2GivenOneCell(t *testing.T) {
	// A 2x2 "box-less" Latin square: box dims 1x2 make every row a box,
	// so the only constraints are cell/row/col (box==row here), which is
	// exactly a Latin square.
	b := NewBoardWithBoxes(1, 2)
	if err := b.SetGiven(0, 0, 2); err != nil {
		t.Fatalf("SetGiven: %v", err)
	}

	if !b.Solve() {
		t.Fatal("Solve() = false, want true")
	}

	want := [2][2]int{{2, 1}, {1, 2}}
	for r := range 2 {
		for c := range 2 {
			if got := b.Cells[r][c]; got != want[r][c] {
				t.Errorf("Cells[%d][%d] = %d, want %d", r, c, got, want[r][c])
			}
		}
	}
}

func TestUnsolvableBoardReportsFailure(t *testing.T) {
	b := NewBoard()
	b.SetGiven(0, 0, 5)
	b.SetGiven(0, 1, 5) // same row, same value: unsolvable

	if b.Solve() {
		t.Fatal("Solve() = true for a contradictory board, want false")
	}
}
