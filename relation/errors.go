// SPDX-License-Identifier: MIT
// Package relation: sentinel error set.
// Only constructors, strict accessors and validators return these. Predicates,
// closures and the partitioner are total over any square relation and never fail.
// Tests MUST match them via errors.Is.

package relation

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "relation: ..." for easy grepping across logs.
// Wrap with relationErrorf at the call site; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested set size is non-positive.
	ErrInvalidDimensions = errors.New("relation: size must be > 0")

	// ErrNonSquare signals ragged or non-square row input.
	ErrNonSquare = errors.New("relation: matrix is not square")

	// ErrNotBinary signals an integer entry other than 0 or 1.
	ErrNotBinary = errors.New("relation: entry is not 0 or 1")

	// ErrOutOfRange indicates an element index outside [0, n).
	ErrOutOfRange = errors.New("relation: index out of range")

	// ErrDimensionMismatch indicates two relations over sets of different size.
	ErrDimensionMismatch = errors.New("relation: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was supplied.
	ErrNilMatrix = errors.New("relation: nil matrix")

	// ErrNotPartition signals that a class list overlaps or fails to cover the set.
	ErrNotPartition = errors.New("relation: classes do not partition the set")
)

// relationErrorf wraps err with an operation tag.
func relationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
