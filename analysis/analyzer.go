package analysis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/relation"
)

// Analyzer runs the linear pipeline
//
//	INPUT → CHECK → PARTITION                                   (equivalence)
//	INPUT → CHECK → CLOSE_R → CLOSE_S → CLOSE_T → RECHECK → PARTITION (otherwise)
//
// An Analyzer holds only configuration and is safe to reuse.
type Analyzer struct {
	opts Options
}

// New builds an Analyzer. Returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Analyzer, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, analysisErrorf("New", o.err)
	}

	return &Analyzer{opts: o}, nil
}

// Analyze runs the pipeline with a one-off Analyzer.
func Analyze(m relation.Matrix, opts ...Option) (*Report, error) {
	a, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return a.Analyze(m)
}

// Analyze runs the pipeline over m. m is copied first and never mutated.
// Errors: relation.ErrNilMatrix / relation.ErrInvalidDimensions for malformed
// input, ErrClosureNotEquivalence under strict recheck.
// Complexity: O(n³).
func (a *Analyzer) Analyze(m relation.Matrix) (*Report, error) {
	if err := relation.ValidateSquare(m); err != nil {
		return nil, analysisErrorf("Analyze", err)
	}

	original := relation.Materialize(m)
	rep := &Report{
		ID:       a.opts.NewID(),
		Size:     original.Size(),
		Original: original,
		Trace:    []Stage{StageInput},
	}
	log := a.opts.Logger.With(
		zap.String("analysis_id", rep.ID),
		zap.Int("size", rep.Size),
	)
	log.Debug("relation received", zap.String("stage", string(StageInput)), zap.Int("pairs", original.Count()))

	// CHECK
	rep.Initial = relation.CheckAll(original)
	rep.Trace = append(rep.Trace, StageCheck)
	logProperties(log, StageCheck, rep.Initial)

	if rep.Initial.IsEquivalence() {
		rep.AlreadyEquivalence = true
		rep.Closure = original
		rep.Final = rep.Initial
		log.Info("relation is already an equivalence relation")
	} else {
		log.Info("relation is not an equivalence relation, computing closure")

		r := runStep(log, StageCloseReflexive, original, !rep.Initial.Reflexive, relation.ReflexiveClosure)
		s := runStep(log, StageCloseSymmetric, r.After, !relation.IsSymmetric(r.After), relation.SymmetricClosure)
		t := runStep(log, StageCloseTransitive, s.After, !relation.IsTransitive(s.After), relation.TransitiveClosure)
		rep.Steps = []Step{r, s, t}
		rep.Trace = append(rep.Trace, StageCloseReflexive, StageCloseSymmetric, StageCloseTransitive)
		rep.Closure = t.After

		// RECHECK is observational; t∘s∘r always yields an equivalence relation.
		rep.Final = relation.CheckAll(rep.Closure)
		rep.Trace = append(rep.Trace, StageRecheck)
		logProperties(log, StageRecheck, rep.Final)
		if !rep.Final.IsEquivalence() {
			log.Error("closure is not an equivalence relation", zap.Stringer("closure", rep.Closure))
			if a.opts.StrictRecheck {
				return nil, analysisErrorf("Analyze", ErrClosureNotEquivalence)
			}
		}
	}

	// PARTITION
	rep.Partition = relation.PartitionOf(rep.Closure)
	rep.Trace = append(rep.Trace, StagePartition)
	log.Info("equivalence classes computed",
		zap.String("stage", string(StagePartition)),
		zap.Int("classes", rep.Partition.Len()),
		zap.Bool("already_equivalence", rep.AlreadyEquivalence),
	)

	return rep, nil
}

// runStep applies one closure operator to before and records the outcome.
func runStep(
	log *zap.Logger,
	stage Stage,
	before *relation.Relation,
	required bool,
	op func(relation.Matrix) *relation.Relation,
) Step {
	after := op(before)
	st := Step{
		Stage:    stage,
		Before:   before,
		After:    after,
		Required: required,
		Changed:  !after.Equal(before),
		Added:    after.Count() - before.Count(),
	}
	log.Debug("closure applied",
		zap.String("stage", string(stage)),
		zap.Bool("required", st.Required),
		zap.Bool("changed", st.Changed),
		zap.Int("added", st.Added),
	)

	return st
}

func logProperties(log *zap.Logger, stage Stage, p relation.Properties) {
	log.Debug("properties checked",
		zap.String("stage", string(stage)),
		zap.Bool("reflexive", p.Reflexive),
		zap.Bool("symmetric", p.Symmetric),
		zap.Bool("transitive", p.Transitive),
		zap.Bool("irreflexive", p.Irreflexive),
		zap.Bool("antisymmetric", p.Antisymmetric),
	)
}
