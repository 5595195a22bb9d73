// Package input collects relation matrices from people and files.
//
// Interactive input follows a retry-until-valid policy: a malformed row prints
// a message and is asked for again, so malformed data never reaches the core.
// File input (YAML or JSON) and plain text input fail fast with wrapped sentinels.
package input

import (
	"errors"
	"fmt"
)

// Sentinel errors for row parsing and file decoding.
var (
	// ErrWrongCount indicates a row with the wrong number of entries.
	ErrWrongCount = errors.New("input: wrong number of entries")

	// ErrNotBinary indicates an entry other than 0 or 1.
	ErrNotBinary = errors.New("input: entries must be 0 or 1")

	// ErrNotNumeric indicates a token that is not an integer.
	ErrNotNumeric = errors.New("input: entries must be numbers")

	// ErrIncomplete indicates that input ended before all rows were read.
	ErrIncomplete = errors.New("input: input ended before the matrix was complete")

	// ErrUnsupportedFormat indicates an unknown file extension.
	ErrUnsupportedFormat = errors.New("input: unsupported file format")

	// ErrEmptyDocument indicates a document with neither rows nor pairs.
	ErrEmptyDocument = errors.New("input: document has no rows or pairs")

	// ErrInvalidSize indicates a missing, non-positive or inconsistent size.
	ErrInvalidSize = errors.New("input: invalid size")
)

// inputErrorf wraps err with an operation tag.
func inputErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
