package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/relation"
	"github.com/katalvlaran/relclosure/render"
)

// partitionDoc is the machine-readable output of partition.
type partitionDoc struct {
	Size        int     `json:"size"`
	Equivalence bool    `json:"equivalence"`
	Classes     [][]int `json:"classes"`
}

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Print the equivalence classes of a relation",
	Long: `Print the equivalence classes of an equivalence relation, labeled 1..n.
A relation that is not an equivalence relation is replaced by its equivalence
closure first and a warning is logged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, popts, err := outputSettings()
		if err != nil {
			return err
		}
		r, err := loadRelation(cmd)
		if err != nil {
			return err
		}

		equivalence := relation.CheckAll(r).IsEquivalence()
		target := r
		if !equivalence {
			logger.Warn("relation is not an equivalence relation, partitioning its equivalence closure",
				zap.Int("size", r.Size()),
				zap.Int("pairs", r.Count()),
			)
			target = relation.EquivalenceClosure(r)
		}
		part := relation.PartitionOf(target)

		if f != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), f, partitionDoc{
				Size:        r.Size(),
				Equivalence: equivalence,
				Classes:     part.Labels(),
			})
		}

		p := render.NewPrinter(cmd.OutOrStdout(), popts...)
		if !equivalence {
			p.Matrix("Equivalence closure", target)
		}
		p.Partition(part)
		return nil
	},
}

func init() {
	addRelationFlags(partitionCmd)
}
