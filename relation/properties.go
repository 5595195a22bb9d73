// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Property predicates over a Matrix: reflexive, irreflexive, symmetric,
//     antisymmetric, transitive.
//   - A Properties snapshot computed once from one matrix.
//
// Determinism & Cost:
//   - Reflexive/irreflexive O(n); symmetric/antisymmetric O(n²) over i<j;
//     transitive O(n³) in fixed i → j → k order, returning at the first violation.
//   - Over n = 0 every predicate is vacuously true.

package relation

// Properties is a snapshot of the five relation properties of one matrix.
// It is not live-updated.
type Properties struct {
	Reflexive     bool `json:"reflexive"`
	Irreflexive   bool `json:"irreflexive"`
	Symmetric     bool `json:"symmetric"`
	Antisymmetric bool `json:"antisymmetric"`
	Transitive    bool `json:"transitive"`
}

// IsEquivalence reports reflexive ∧ symmetric ∧ transitive.
func (p Properties) IsEquivalence() bool {
	return p.Reflexive && p.Symmetric && p.Transitive
}

// IsPartialOrder reports reflexive ∧ antisymmetric ∧ transitive.
func (p Properties) IsPartialOrder() bool {
	return p.Reflexive && p.Antisymmetric && p.Transitive
}

// Triple is a witness (I, J, K) with I→J and J→K related but I→K missing.
type Triple struct {
	I, J, K int
}

// CheckAll computes all five properties of m.
// Complexity: O(n³) dominated by the transitivity check.
func CheckAll(m Matrix) Properties {
	return Properties{
		Reflexive:     IsReflexive(m),
		Irreflexive:   IsIrreflexive(m),
		Symmetric:     IsSymmetric(m),
		Antisymmetric: IsAntisymmetric(m),
		Transitive:    IsTransitive(m),
	}
}

// IsReflexive reports whether every element relates to itself.
func IsReflexive(m Matrix) bool {
	return diagonalAll(m, true)
}

// IsIrreflexive reports whether no element relates to itself.
func IsIrreflexive(m Matrix) bool {
	return diagonalAll(m, false)
}

// diagonalAll reports whether every diagonal entry equals want.
func diagonalAll(m Matrix, want bool) bool {
	n := sizeOf(m)
	if r, ok := m.(*Relation); ok {
		for i := 0; i < n; i++ {
			if r.data[i*n+i] != want {
				return false
			}
		}

		return true
	}
	for i := 0; i < n; i++ {
		if m.Has(i, i) != want {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every pair i<j.
// The diagonal is ignored: self-pairs cannot violate symmetry.
func IsSymmetric(m Matrix) bool {
	_, found := FindSymmetryViolation(m)

	return !found
}

// FindSymmetryViolation returns the first pair (i,j), i<j, where exactly one
// direction is related. The scan order matches IsSymmetric.
func FindSymmetryViolation(m Matrix) (Pair, bool) {
	n := sizeOf(m)
	var i, j int
	if r, ok := m.(*Relation); ok {
		data := r.dataOrNil()
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if data[i*n+j] != data[j*n+i] {
					return Pair{I: i, J: j}, true
				}
			}
		}

		return Pair{}, false
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.Has(i, j) != m.Has(j, i) {
				return Pair{I: i, J: j}, true
			}
		}
	}

	return Pair{}, false
}

// IsAntisymmetric reports that no pair i≠j is related in both directions.
// Self-loops do not violate antisymmetry; only i<j is compared.
func IsAntisymmetric(m Matrix) bool {
	n := sizeOf(m)
	var i, j int
	if r, ok := m.(*Relation); ok {
		data := r.dataOrNil()
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if data[i*n+j] && data[j*n+i] {
					return false
				}
			}
		}

		return true
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.Has(i, j) && m.Has(j, i) {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports whether m[i][j] ∧ m[j][k] ⇒ m[i][k] for every triple.
// Returns at the first violation.
func IsTransitive(m Matrix) bool {
	_, found := FindTransitivityViolation(m)

	return !found
}

// FindTransitivityViolation returns the first triple (i,j,k), scanned in
// i → j → k order, with i→j and j→k related but i→k missing.
// Complexity: O(n³) worst case.
func FindTransitivityViolation(m Matrix) (Triple, bool) {
	n := sizeOf(m)
	var i, j, k int
	if r, ok := m.(*Relation); ok {
		data := r.dataOrNil()
		for i = 0; i < n; i++ {
			baseI := i * n
			for j = 0; j < n; j++ {
				if !data[baseI+j] {
					continue // no i→j, nothing to propagate
				}
				baseJ := j * n
				for k = 0; k < n; k++ {
					if data[baseJ+k] && !data[baseI+k] {
						return Triple{I: i, J: j, K: k}, true
					}
				}
			}
		}

		return Triple{}, false
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !m.Has(i, j) {
				continue
			}
			for k = 0; k < n; k++ {
				if m.Has(j, k) && !m.Has(i, k) {
					return Triple{I: i, J: j, K: k}, true
				}
			}
		}
	}

	return Triple{}, false
}
