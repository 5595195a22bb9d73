// Package main provides the relclosure command.
//
// relclosure reads a binary relation on A = {1..n} as an n×n 0/1 matrix,
// reports its properties, builds the equivalence closure t(s(r(R))) step by
// step and prints the resulting equivalence classes.
//
// Usage:
//
//	relclosure [flags] <command>
//
// Commands:
//   - analyze: full pipeline with a step-by-step report
//   - check: property report only
//   - closure: a single closure (reflexive, symmetric, transitive, equivalence)
//   - partition: equivalence classes
//   - config show: effective configuration
//   - version: build information
//
// Without --file (or input.file in relclosure.yaml) the matrix is read
// interactively, one row per line.
package main

func main() {
	Execute()
}
