package xxh

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned when an Algorithm value outside
	// the defined set is passed to New or Sum.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidState is returned when a serialized hasher state is
	// malformed or truncated.
	ErrInvalidState = errors.New("invalid hasher state")
)

// ErrAlgorithmMismatch indicates a serialized hasher state restored
// into a hasher of a different algorithm.
//
// The original underlying error (if any) can be accessed via
// errors.Unwrap.
type ErrAlgorithmMismatch struct {
	Expected Algorithm
	Actual   Algorithm
	cause    error
}

func (e *ErrAlgorithmMismatch) Error() string {
	return fmt.Sprintf("algorithm mismatch: hasher is %s, state is %s", e.Expected, e.Actual)
}

func (e *ErrAlgorithmMismatch) Unwrap() error { return e.cause }
