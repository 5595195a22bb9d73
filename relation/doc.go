// Package relation analyzes binary relations over a fixed finite set.
//
// A relation R ⊆ A×A over A = {0, 1, …, n-1} is stored as a dense n×n boolean
// matrix (Relation). The package provides:
//
//   - Property predicates: IsReflexive, IsIrreflexive, IsSymmetric,
//     IsAntisymmetric, IsTransitive, and the CheckAll snapshot.
//   - Closure operators: ReflexiveClosure, SymmetricClosure,
//     TransitiveClosure (Warshall, O(n³)) and EquivalenceClosure = t∘s∘r.
//   - The equivalence partitioner PartitionOf and the Partition type.
//
// Every operator is a pure function. Inputs are never mutated and every
// closure returns a freshly allocated Relation.
//
// Quick example:
//
//	r, _ := relation.FromBits([][]int{
//		{0, 1, 0},
//		{0, 0, 0},
//		{0, 0, 0},
//	})
//	eq := relation.EquivalenceClosure(r)
//	fmt.Println(relation.PartitionOf(eq).Labels()) // [[1 2] [3]]
//
// The dense representation targets small n; memory is O(n²).
package relation
