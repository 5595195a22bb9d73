// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Reflexive, symmetric and transitive closure operators, plus the fixed
//     r → s → t composition that yields the equivalence closure.
//
// Contract:
//   - Inputs are never mutated. Every operator allocates a fresh *Relation,
//     copies the input into it and mutates only the copy.
//   - nil input is the empty relation; the result is then the empty relation.
//   - Each operator is idempotent.

package relation

// ReflexiveClosure returns r(M): M with every diagonal entry forced true.
// Off-diagonal entries are unchanged.
// Complexity: O(n²) copy + O(n) writes.
func ReflexiveClosure(m Matrix) *Relation {
	out := Materialize(m)
	n := out.n
	for i := 0; i < n; i++ {
		out.data[i*n+i] = true
	}

	return out
}

// SymmetricClosure returns s(M) = M ∨ Mᵗ.
// For every pair i<j, if either direction is related both become related.
// Complexity: O(n²).
func SymmetricClosure(m Matrix) *Relation {
	out := Materialize(m)
	n := out.n
	data := out.data
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if data[i*n+j] || data[j*n+i] {
				data[i*n+j] = true
				data[j*n+i] = true
			}
		}
	}

	return out
}

// TransitiveClosure returns t(M), the smallest transitive relation containing M,
// computed with Warshall's algorithm (fixed k → i → j order, no early exit).
// Complexity: O(n³) time, O(n²) for the copy.
func TransitiveClosure(m Matrix) *Relation {
	out := Materialize(m)
	warshallInPlace(out)

	return out
}

// EquivalenceClosure returns t(s(r(M))), the smallest equivalence relation
// containing M. The order is fixed: reflexivity survives s and t, and symmetry
// survives t, so the result is always reflexive, symmetric and transitive.
// Complexity: O(n³).
func EquivalenceClosure(m Matrix) *Relation {
	return TransitiveClosure(SymmetricClosure(ReflexiveClosure(m)))
}
