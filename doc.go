// Package relclosure checks binary relations on a finite set and turns them
// into equivalence relations.
//
// A relation R on A = {1..n} is an n×n 0/1 matrix: R[i][j] = 1 means i R j.
//
// What is inside?
//
//	• Property checks: reflexive, symmetric, transitive, plus the informational
//	  irreflexive and antisymmetric
//	• Closures: reflexive r(R), symmetric s(R), transitive t(R) (Warshall)
//	• Equivalence closure t(s(r(R))) applied in exactly that order
//	• Partition: the equivalence classes of an equivalence relation
//	• A step-by-step analysis report, as text, YAML or JSON
//
// Everything is organized under four packages and one command:
//
//	relation/       Relation, property predicates, closures, partition
//	analysis/       the CHECK → CLOSE_R → CLOSE_S → CLOSE_T → RECHECK → PARTITION pipeline
//	input/          interactive row reader, YAML/JSON/text relation files
//	render/         matrix tables, O/X property report, YAML/JSON encoding
//	cmd/relclosure/ the relclosure CLI
//
// Quick example:
//
//	    1 → 2        r, s, t        {1, 2}
//	    3      ──────────────▶      {3}
//
// relates 1 to 2 only; its equivalence closure has the classes {1, 2} and {3}.
//
//	go install github.com/katalvlaran/relclosure/cmd/relclosure@latest
package relclosure
