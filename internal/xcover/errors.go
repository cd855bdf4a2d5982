package xcover

import "errors"

// Caller faults, reported by AddOption and RemoveItem. Solve and
// SolveWithStats themselves never fail; ErrAlreadyStarted reports a
// RemoveItem call made after one of them.
var (
	ErrCapacityExhausted = errors.New("xcover: option exceeds matrix cell capacity")
	ErrItemOutOfRange    = errors.New("xcover: item identifier out of range")
	ErrDuplicateItem     = errors.New("xcover: duplicate item identifier within one option")
	ErrEmptyOption       = errors.New("xcover: option must cover at least one item")
	ErrAlreadyStarted    = errors.New("xcover: RemoveItem called after Solve")
)
