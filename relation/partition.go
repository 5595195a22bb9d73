// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Derive equivalence classes (partition blocks) from a relation matrix.
//
// Contract:
//   - PartitionOf does not enforce its precondition. Given a genuine equivalence
//     relation the classes are disjoint and exhaustive; otherwise they may overlap
//     or miss elements, and Validate reports it.
//   - Indices are 0-based internally; Labels translates to 1-based for display.

package relation

import "sort"

// Class is one equivalence class, keyed by the seed element that opened it.
// Members are ascending and 0-based.
type Class struct {
	Seed    int   `json:"seed"`
	Members []int `json:"members"`
}

// Partition is the ordered sequence of classes, in order of increasing seed.
type Partition []Class

// PartitionOf scans elements in increasing index order. Each unvisited element i
// opens a class holding every j with m[i][j]; all such j are marked visited.
// Complexity: O(n²).
func PartitionOf(m Matrix) Partition {
	n := sizeOf(m)
	visited := make([]bool, n)
	out := make(Partition, 0, n)

	var i, j int
	for i = 0; i < n; i++ {
		if visited[i] {
			continue
		}
		members := make([]int, 0, n)
		for j = 0; j < n; j++ {
			if m.Has(i, j) {
				members = append(members, j)
				visited[j] = true
			}
		}
		// j ascends, so members are already sorted.
		out = append(out, Class{Seed: i, Members: members})
	}

	return out
}

// Len returns the number of classes.
func (p Partition) Len() int { return len(p) }

// Labels returns every class as ascending 1-based element labels.
func (p Partition) Labels() [][]int {
	out := make([][]int, len(p))
	for c, cl := range p {
		lbl := make([]int, len(cl.Members))
		for k, v := range cl.Members {
			lbl[k] = v + 1
		}
		out[c] = lbl
	}

	return out
}

// ClassOf returns the first class containing element i.
func (p Partition) ClassOf(i int) (Class, bool) {
	for _, cl := range p {
		k := sort.SearchInts(cl.Members, i)
		if k < len(cl.Members) && cl.Members[k] == i {
			return cl, true
		}
	}

	return Class{}, false
}

// Validate checks that the classes are non-empty, pairwise disjoint and cover
// exactly {0..n-1}. Returns ErrNotPartition otherwise.
// Complexity: O(n + Σ|class|).
func (p Partition) Validate(n int) error {
	if n < 0 {
		return relationErrorf("Partition.Validate", ErrInvalidDimensions)
	}
	seen := make([]bool, n)
	covered := 0
	for _, cl := range p {
		if len(cl.Members) == 0 {
			return relationErrorf("Partition.Validate: empty class", ErrNotPartition)
		}
		for _, v := range cl.Members {
			if v < 0 || v >= n {
				return relationErrorf("Partition.Validate: element out of range", ErrNotPartition)
			}
			if seen[v] {
				return relationErrorf("Partition.Validate: overlapping classes", ErrNotPartition)
			}
			seen[v] = true
			covered++
		}
	}
	if covered != n {
		return relationErrorf("Partition.Validate: classes do not cover the set", ErrNotPartition)
	}

	return nil
}

// Relation rebuilds the equivalence relation whose classes are p: i ~ j iff
// i and j share a class. p must be a valid partition of n elements.
func (p Partition) Relation(n int) (*Relation, error) {
	if n <= 0 {
		return nil, relationErrorf("Partition.Relation", ErrInvalidDimensions)
	}
	if err := p.Validate(n); err != nil {
		return nil, err
	}
	r := newRelation(n)
	for _, cl := range p {
		for _, a := range cl.Members {
			for _, b := range cl.Members {
				r.data[a*n+b] = true
			}
		}
	}

	return r, nil
}
