package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relclosure/analysis"
	"github.com/katalvlaran/relclosure/internal/cli"
	"github.com/katalvlaran/relclosure/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check a relation and build its equivalence closure",
	Long: `Check a relation for reflexivity, symmetry and transitivity. If it is not an
equivalence relation, apply the reflexive, symmetric and transitive closures in
that order, recheck the result and print its equivalence classes.`,
	Example: `  # Enter a 3x3 matrix interactively
  relclosure analyze -n 3

  # Analyze a file and emit a JSON report
  relclosure analyze -f relation.yaml -o json`,
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

		rep, err := analysis.Analyze(r,
			analysis.WithLogger(logger),
			analysis.WithStrictRecheck(cfg.Analysis.StrictRecheck),
		)
		if err != nil {
			return cli.GeneralError("analyzing relation", err)
		}

		return render.Report(cmd.OutOrStdout(), rep, f, popts...)
	},
}

func init() {
	addRelationFlags(analyzeCmd)
}
