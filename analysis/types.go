// Package analysis runs the equivalence analysis pipeline over a relation:
// check properties, close r → s → t when needed, re-check, and partition.
package analysis

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/relation"
)

// Sentinel errors for pipeline execution.
var (
	// ErrClosureNotEquivalence is returned under strict recheck when the closed
	// relation is not an equivalence relation. Unreachable for t∘s∘r.
	ErrClosureNotEquivalence = errors.New("analysis: closure is not an equivalence relation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
)

// analysisErrorf wraps err with an operation tag.
func analysisErrorf(op string, err error) error {
	return fmt.Errorf("analysis.%s: %w", op, err)
}

// Stage names one state of the pipeline.
type Stage string

// Pipeline stages, in the order they can occur.
const (
	StageInput           Stage = "input"
	StageCheck           Stage = "check"
	StageCloseReflexive  Stage = "close_reflexive"
	StageCloseSymmetric  Stage = "close_symmetric"
	StageCloseTransitive Stage = "close_transitive"
	StageRecheck         Stage = "recheck"
	StagePartition       Stage = "partition"
)

// Step records one closure stage.
type Step struct {
	// Stage is one of StageCloseReflexive, StageCloseSymmetric, StageCloseTransitive.
	Stage Stage

	// Before is the stage input; After is the freshly allocated result.
	Before, After *relation.Relation

	// Required is true when Before lacked the property this stage closes under.
	// When false the stage still runs and After equals Before.
	Required bool

	// Changed is true when After differs from Before.
	Changed bool

	// Added is the number of pairs the stage introduced.
	Added int
}

// Report is the full, immutable outcome of one analysis.
type Report struct {
	// ID identifies the run in logs and exported reports.
	ID string

	// Size is n, the number of elements.
	Size int

	// Original is a private copy of the analyzed matrix.
	Original *relation.Relation

	// Initial is the property snapshot of Original.
	Initial relation.Properties

	// AlreadyEquivalence is true when Original needed no closure.
	AlreadyEquivalence bool

	// Steps lists the closure stages in r, s, t order; empty when AlreadyEquivalence.
	Steps []Step

	// Closure is the partitioned relation: Original itself or t(s(r(Original))).
	Closure *relation.Relation

	// Final is the property snapshot of Closure (the RECHECK result).
	Final relation.Properties

	// Partition holds the equivalence classes of Closure.
	Partition relation.Partition

	// Trace lists the visited stages in order.
	Trace []Stage
}

// Step returns the recorded closure step for stage s.
func (r *Report) Step(s Stage) (Step, bool) {
	for _, st := range r.Steps {
		if st.Stage == s {
			return st, true
		}
	}

	return Step{}, false
}

// Option configures an Analyzer.
type Option func(*Options)

// Options holds the Analyzer configuration.
type Options struct {
	// Logger receives one entry per stage. Defaults to zap.NewNop().
	Logger *zap.Logger

	// NewID generates report IDs. Defaults to uuid.NewString.
	NewID func() string

	// StrictRecheck turns a failed RECHECK into ErrClosureNotEquivalence.
	// Defaults to true.
	StrictRecheck bool

	// err records an invalid option, surfaced by Analyze.
	err error
}
