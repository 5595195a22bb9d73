package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/relclosure/analysis"
	"github.com/katalvlaran/relclosure/relation"
)

// ExampleAnalyze runs the pipeline on a relation that needs every closure step.
func ExampleAnalyze() {
	m, _ := relation.FromPairs(4,
		relation.Pair{I: 0, J: 1},
		relation.Pair{I: 1, J: 2},
	)
	rep, err := analysis.Analyze(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("equivalence before:", rep.Initial.IsEquivalence())
	for _, st := range rep.Steps {
		fmt.Printf("%s: required=%v added=%d\n", st.Stage, st.Required, st.Added)
	}
	fmt.Println("classes:", rep.Partition.Labels())
	// Output:
	// equivalence before: false
	// close_reflexive: required=true added=4
	// close_symmetric: required=true added=2
	// close_transitive: required=true added=2
	// classes: [[1 2 3] [4]]
}
