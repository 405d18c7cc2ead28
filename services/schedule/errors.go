package schedule

import "errors"

var (
	// ErrInvalidFormat reports a time string that does not parse as HH:MM.
	ErrInvalidFormat = errors.New("invalid time format")

	// ErrEmptyInterval reports a proposed block with start >= end.
	ErrEmptyInterval = errors.New("empty interval")

	// ErrInvariantViolation reports a day whose blocks are not sorted,
	// disjoint and non-adjacent. Unreachable when blocks are only mutated
	// through Insert/Remove; seeing it means something wrote blocks directly.
	ErrInvariantViolation = errors.New("availability invariant violation")
)
