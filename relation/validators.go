// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Single source of truth for the well-formedness checks an input layer or
//     pipeline may want to assert before handing a Matrix to the core.
//   - Return sentinel errors tagged with the validator name.
//
// Note:
//   - The core operators do not call these; they are total over any Matrix.

package relation

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return relationErrorf(tag, err)
}

// ValidateNotNil rejects a nil interface and a typed nil *Relation.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if r, ok := m.(*Relation); ok && r == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks NotNil and a positive size.
// A Matrix is square by construction; this guards against Size() <= 0.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Size() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameSize composes NotNil(a) → NotNil(b) → equal sizes.
// Complexity: O(1).
func ValidateSameSize(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}
