package core

import "errors"

// Sentinel errors for input validation. Shape and argument violations fail
// loudly at the call site; numerical degeneracies never use these and
// instead propagate as non-finite values (see Eps).
var (
	// ErrInvalidShape reports input that is not a usable one-dimensional
	// series (fewer than two observations, nothing to difference).
	ErrInvalidShape = errors.New("invalid series shape")

	// ErrInvalidArgument reports mismatched lengths, bad counts, or too few
	// variables for a multivariate operation.
	ErrInvalidArgument = errors.New("invalid argument")
)
