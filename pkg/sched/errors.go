package sched

import "errors"

var (
	// ErrUnknownAlgorithm is returned by Simulate and ParseAlgorithm when the
	// algorithm matches none of the supported policies.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

	// ErrUnknownDirection is returned by ParseDirection for anything other
	// than UP, DOWN, or the empty string.
	ErrUnknownDirection = errors.New("unknown sweep direction")
)
