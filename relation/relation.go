// SPDX-License-Identifier: MIT
// Package relation: dense boolean relation matrix.
//
// Purpose:
//   - Represent a binary relation R ⊆ A×A over A = {0..n-1} as an n×n boolean matrix.
//   - Store entries row-major in a single flat slice for cache-friendly kernels.
//
// Contract:
//   - A *Relation is immutable once returned by a constructor or an operator.
//   - Constructors copy their input; no caller slice is ever aliased.
//   - The zero value (and a nil *Relation) is the empty relation over n = 0.

package relation

import (
	"strings"
)

// Pair is an ordered pair (I, J) of 0-based element indices, meaning "I relates to J".
type Pair struct {
	I int // source element
	J int // target element
}

// Matrix is a read-only square boolean view of a relation.
// Every predicate and closure in this package accepts a Matrix; *Relation takes
// a flat-slice fast path, other implementations go through Has.
//
// Complexity notes: both methods are expected O(1).
type Matrix interface {
	// Size returns n, the number of elements of the underlying set.
	Size() int

	// Has reports whether i relates to j. Out-of-range indices report false.
	Has(i, j int) bool
}

// Relation is a dense row-major n×n boolean matrix.
type Relation struct {
	n    int    // number of elements (rows == cols)
	data []bool // flat backing storage, len == n*n
}

// newRelation allocates an all-false n×n relation without validation.
// Used internally where n has already been checked (n may be 0).
func newRelation(n int) *Relation {
	return &Relation{n: n, data: make([]bool, n*n)}
}

// New creates the empty relation (no pairs) over n elements.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Relation, error) {
	if n <= 0 {
		return nil, relationErrorf("New", ErrInvalidDimensions)
	}

	return newRelation(n), nil
}

// Identity returns the equality relation {(i,i)} over n elements.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Relation, error) {
	if n <= 0 {
		return nil, relationErrorf("Identity", ErrInvalidDimensions)
	}
	r := newRelation(n)
	for i := 0; i < n; i++ {
		r.data[i*n+i] = true
	}

	return r, nil
}

// FromRows builds a relation from a square [][]bool, copying every entry.
// Errors: ErrInvalidDimensions on zero rows, ErrNonSquare on ragged rows.
// Complexity: O(n²).
func FromRows(rows [][]bool) (*Relation, error) {
	n := len(rows)
	if n == 0 {
		return nil, relationErrorf("FromRows", ErrInvalidDimensions)
	}
	r := newRelation(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, relationErrorf("FromRows", ErrNonSquare)
		}
		copy(r.data[i*n:(i+1)*n], row)
	}

	return r, nil
}

// FromBits builds a relation from a square 0/1 integer matrix.
// Errors: ErrInvalidDimensions, ErrNonSquare, ErrNotBinary.
// Complexity: O(n²).
func FromBits(rows [][]int) (*Relation, error) {
	n := len(rows)
	if n == 0 {
		return nil, relationErrorf("FromBits", ErrInvalidDimensions)
	}
	r := newRelation(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, relationErrorf("FromBits", ErrNonSquare)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				r.data[i*n+j] = true
			default:
				return nil, relationErrorf("FromBits", ErrNotBinary)
			}
		}
	}

	return r, nil
}

// FromPairs builds a relation over n elements containing exactly the given pairs.
// Duplicate pairs are harmless. Errors: ErrInvalidDimensions, ErrOutOfRange.
// Complexity: O(n² + len(pairs)).
func FromPairs(n int, pairs ...Pair) (*Relation, error) {
	if n <= 0 {
		return nil, relationErrorf("FromPairs", ErrInvalidDimensions)
	}
	r := newRelation(n)
	for _, p := range pairs {
		if p.I < 0 || p.I >= n || p.J < 0 || p.J >= n {
			return nil, relationErrorf("FromPairs", ErrOutOfRange)
		}
		r.data[p.I*n+p.J] = true
	}

	return r, nil
}

// Materialize copies any Matrix into a fresh *Relation.
// A nil Matrix yields the empty relation over n = 0.
// Complexity: O(n²).
func Materialize(m Matrix) *Relation {
	if m == nil {
		return newRelation(0)
	}
	if r, ok := m.(*Relation); ok {
		return r.Clone()
	}

	// Generic fallback through the interface.
	n := m.Size()
	r := newRelation(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.data[i*n+j] = m.Has(i, j)
		}
	}

	return r
}

// Size returns the number of elements n. Nil-safe.
func (r *Relation) Size() int {
	if r == nil {
		return 0
	}

	return r.n
}

// Has reports whether i relates to j. Out-of-range indices report false.
// Complexity: O(1).
func (r *Relation) Has(i, j int) bool {
	if r == nil || i < 0 || i >= r.n || j < 0 || j >= r.n {
		return false
	}

	return r.data[i*r.n+j]
}

// At is the strict form of Has: out-of-range indices return ErrOutOfRange.
func (r *Relation) At(i, j int) (bool, error) {
	n := r.Size()
	if i < 0 || i >= n || j < 0 || j >= n {
		return false, relationErrorf("At", ErrOutOfRange)
	}

	return r.data[i*n+j], nil
}

// Rows returns a fresh [][]bool copy of the matrix.
func (r *Relation) Rows() [][]bool {
	n := r.Size()
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		copy(out[i], r.data[i*n:(i+1)*n])
	}

	return out
}

// Bits returns a fresh 0/1 integer copy of the matrix, the form used for display.
func (r *Relation) Bits() [][]int {
	n := r.Size()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if r.data[i*n+j] {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Pairs lists every related pair in row-major order.
func (r *Relation) Pairs() []Pair {
	n := r.Size()
	var out []Pair
	for idx := 0; idx < n*n; idx++ {
		if r.data[idx] {
			out = append(out, Pair{I: idx / n, J: idx % n})
		}
	}

	return out
}

// Count returns the number of related pairs.
func (r *Relation) Count() int {
	c := 0
	for _, v := range r.dataOrNil() {
		if v {
			c++
		}
	}

	return c
}

// Equal reports whether r and other have the same size and the same pairs.
// Complexity: O(n²).
func (r *Relation) Equal(other Matrix) bool {
	n := r.Size()
	if sizeOf(other) != n {
		return false
	}
	if o, ok := other.(*Relation); ok {
		for idx := 0; idx < n*n; idx++ {
			if r.data[idx] != o.data[idx] {
				return false
			}
		}

		return true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if r.data[i*n+j] != other.Has(i, j) {
				return false
			}
		}
	}

	return true
}

// Contains reports whether every pair of other is also a pair of r (r ⊇ other).
// Relations over different sizes are never in a containment relation.
func (r *Relation) Contains(other Matrix) bool {
	n := r.Size()
	if sizeOf(other) != n {
		return false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if other.Has(i, j) && !r.data[i*n+j] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy. A nil receiver yields the empty relation.
// Complexity: O(n²).
func (r *Relation) Clone() *Relation {
	if r == nil {
		return newRelation(0)
	}
	data := make([]bool, len(r.data))
	copy(data, r.data)

	return &Relation{n: r.n, data: data}
}

// Transpose returns Rᵗ: (j,i) for every (i,j) in R.
func (r *Relation) Transpose() *Relation {
	n := r.Size()
	out := newRelation(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[j*n+i] = r.data[i*n+j]
		}
	}

	return out
}

// Union returns R ∪ other. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (r *Relation) Union(other Matrix) (*Relation, error) {
	if err := ValidateSameSize(r, other); err != nil {
		return nil, relationErrorf("Union", err)
	}
	out := r.Clone()
	n := out.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if other.Has(i, j) {
				out.data[i*n+j] = true
			}
		}
	}

	return out, nil
}

// String renders the matrix as 0/1 rows, one per line.
func (r *Relation) String() string {
	n := r.Size()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if r.data[i*n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// dataOrNil returns the backing slice, or nil for a nil receiver.
func (r *Relation) dataOrNil() []bool {
	if r == nil {
		return nil
	}

	return r.data
}

// sizeOf returns m.Size(), treating a nil interface as the empty relation.
func sizeOf(m Matrix) int {
	if m == nil {
		return 0
	}

	return m.Size()
}
