package random

import (
	"fmt"
	"math/big"
	"strconv"
)

// RangeError reports sampling bounds that describe an empty range. It is
// raised before any entropy is consumed, so a failed call leaves the draw
// sequence untouched.
//
// Both bounds are carried as decimal strings so the same type serves fixed
// width and arbitrary precision sampling.
type RangeError struct {
	Min string
	Max string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("random: max must be >= min (min %s, max %s)", e.Min, e.Max)
}

func newRangeError(min, max int64) *RangeError {
	return &RangeError{
		Min: strconv.FormatInt(min, 10),
		Max: strconv.FormatInt(max, 10),
	}
}

func newBigRangeError(min, max *big.Int) *RangeError {
	return &RangeError{Min: min.String(), Max: max.String()}
}

// GenerationError reports constraints that leave no viable candidate to
// sample, such as a ban list covering the whole alphabet. Like RangeError it
// is raised before any draw, never mid-string.
//
// Both error types reflect invalid caller configuration. They are
// deterministic for a given request and never worth retrying.
type GenerationError struct {
	// Constraint names the requirement that exhausted the candidate set.
	Constraint string
}

func (e *GenerationError) Error() string {
	return "random: generation impossible: " + e.Constraint
}

func newGenerationError(format string, args ...any) *GenerationError {
	return &GenerationError{Constraint: fmt.Sprintf(format, args...)}
}
