// SPDX-License-Identifier: MIT
// Package relation_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for predicates, closures and the partitioner.
//   - Exhaustive and seeded-random relation generators for property tests.

package relation_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/relclosure/relation"
)

// hide wraps any Matrix to mask its concrete type, forcing the generic
// (non-*Relation) path in code under test.
type hide struct{ relation.Matrix }

// MustRelation builds a relation from 0/1 rows or fails the test.
func MustRelation(t *testing.T, rows [][]int) *relation.Relation {
	t.Helper()
	r, err := relation.FromBits(rows)
	if err != nil {
		t.Fatalf("FromBits(%v): %v", rows, err)
	}

	return r
}

// MustPairs builds a relation over n elements from pairs or fails the test.
func MustPairs(t *testing.T, n int, pairs ...relation.Pair) *relation.Relation {
	t.Helper()
	r, err := relation.FromPairs(n, pairs...)
	if err != nil {
		t.Fatalf("FromPairs(%d, %v): %v", n, pairs, err)
	}

	return r
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// allRelations enumerates every relation over n elements (2^(n²) of them).
// Keep n <= 3 in tests.
func allRelations(t *testing.T, n int) []*relation.Relation {
	t.Helper()
	cells := n * n
	out := make([]*relation.Relation, 0, 1<<cells)
	for mask := 0; mask < 1<<cells; mask++ {
		rows := make([][]bool, n)
		for i := 0; i < n; i++ {
			rows[i] = make([]bool, n)
			for j := 0; j < n; j++ {
				rows[i][j] = mask&(1<<(i*n+j)) != 0
			}
		}
		r, err := relation.FromRows(rows)
		if err != nil {
			t.Fatalf("FromRows: %v", err)
		}
		out = append(out, r)
	}

	return out
}

// randomRelation draws each pair independently with probability p.
func randomRelation(t *testing.T, rng *rand.Rand, n int, p float64) *relation.Relation {
	t.Helper()
	rows := make([][]bool, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			rows[i][j] = rng.Float64() < p
		}
	}
	r, err := relation.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return r
}

// sampleRelations returns every relation for n = 1..3 plus seeded random
// relations for n = 4..8.
func sampleRelations(t *testing.T) []*relation.Relation {
	t.Helper()
	var out []*relation.Relation
	for n := 1; n <= 3; n++ {
		out = append(out, allRelations(t, n)...)
	}
	rng := rand.New(rand.NewSource(42))
	for n := 4; n <= 8; n++ {
		for _, p := range []float64{0.1, 0.25, 0.5} {
			for k := 0; k < 20; k++ {
				out = append(out, randomRelation(t, rng, n, p))
			}
		}
	}

	return out
}
