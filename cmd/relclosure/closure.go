package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/internal/cli"
	"github.com/katalvlaran/relclosure/relation"
	"github.com/katalvlaran/relclosure/render"
)

type closureKind struct {
	title string
	op    func(relation.Matrix) *relation.Relation
}

var closureKinds = map[string]closureKind{
	"reflexive":   {title: "Reflexive closure r(R)", op: relation.ReflexiveClosure},
	"symmetric":   {title: "Symmetric closure s(R)", op: relation.SymmetricClosure},
	"transitive":  {title: "Transitive closure t(R)", op: relation.TransitiveClosure},
	"equivalence": {title: "Equivalence closure t(s(r(R)))", op: relation.EquivalenceClosure},
}

func closureKindNames() string {
	names := make([]string, 0, len(closureKinds))
	for k := range closureKinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// closureDoc is the machine-readable output of closure.
type closureDoc struct {
	Kind     string  `json:"kind"`
	Size     int     `json:"size"`
	Relation [][]int `json:"relation"`
	Closure  [][]int `json:"closure"`
	Added    int     `json:"added"`
}

var closureKindFlag string

var closureCmd = &cobra.Command{
	Use:   "closure",
	Short: "Compute a single closure of a relation",
	Example: `  # Transitive closure of a relation file
  relclosure closure --kind transitive -f relation.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := closureKinds[closureKindFlag]
		if !ok {
			return cli.GeneralError("unknown closure kind",
				fmt.Errorf("%q (want %s)", closureKindFlag, closureKindNames()))
		}
		f, popts, err := outputSettings()
		if err != nil {
			return err
		}
		r, err := loadRelation(cmd)
		if err != nil {
			return err
		}

		c := kind.op(r)
		added := c.Count() - r.Count()
		logger.Info("closure computed", zap.String("kind", closureKindFlag), zap.Int("added", added))

		if f != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), f, closureDoc{
				Kind:     closureKindFlag,
				Size:     r.Size(),
				Relation: r.Bits(),
				Closure:  c.Bits(),
				Added:    added,
			})
		}

		p := render.NewPrinter(cmd.OutOrStdout(), popts...)
		p.Matrix("Relation R", r)
		p.Matrix(kind.title, c)
		p.Line(fmt.Sprintf("  - pairs added: %d", added))
		return nil
	},
}

func init() {
	addRelationFlags(closureCmd)
	closureCmd.Flags().StringVarP(&closureKindFlag, "kind", "k", "equivalence", "closure kind: "+closureKindNames())
}
