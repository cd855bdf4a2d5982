package sudoku

import (
	"fmt"
	"os"
	"strings"
)

func stateError(msg string) {
	fatalError("invalid board state", msg)
}

func fatalError(msgs ...string) {
	msg := strings.Join(msgs, ": ")
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
