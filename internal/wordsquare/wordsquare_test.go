package wordsquare

import "testing"

func TestThreeByThreeSquareFromSmallWordList(t *testing.T) {
	words := []string{"CAT", "ACE", "TEN"}
	grid, ok := Solve(3, words)
	if !ok {
		t.Fatal("expected a solution for CAT/ACE/TEN")
	}
	if len(grid) != 3 {
		t.Fatalf("grid has %d rows, want 3", len(grid))
	}
	for _, row := range grid {
		if len(row) != 3 {
			t.Fatalf("row %q has length %d, want 3", row, len(row))
		}
	}
	// Every row and every column must be one of the supplied words.
	allowed := map[string]bool{"CAT": true, "ACE": true, "TEN": true}
	for _, row := range grid {
		if !allowed[row] {
			t.Errorf("row %q is not in the word list", row)
		}
	}
	for c := 0; c < 3; c++ {
		col := string([]byte{grid[0][c], grid[1][c], grid[2][c]})
		if !allowed[col] {
			t.Errorf("column %q is not in the word list", col)
		}
	}
}

func TestNoSquareFromIncompatibleWords(t *testing.T) {
	// No combination of these three words can cross-agree on any cell.
	words := []string{"DOG", "CAT", "FLY"}
	_, ok := Solve(3, words)
	if ok {
		t.Fatal("expected no word square from a dictionary with no consistent crossings")
	}
}

func TestDefaultDictionaryProducesSolutions(t *testing.T) {
	count, err := CountSolutions(3, DefaultThreeLetterWords, 1)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if count == 0 {
		t.Fatal("expected the default 3-letter dictionary to admit at least one word square")
	}
}

func TestEncodeRejectsEmptyFilteredWordList(t *testing.T) {
	_, err := Encode(5, []string{"CAT", "DOG"})
	if err == nil {
		t.Fatal("expected an error when no words match the requested length")
	}
}

func TestFilterWordsDedupesAndUppercases(t *testing.T) {
	got := filterWords(3, []string{"cat", "CAT", "Cat", "dog"})
	if len(got) != 2 {
		t.Fatalf("filterWords returned %d words, want 2: %v", len(got), got)
	}
}
