package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/relclosure/relation"
	"github.com/katalvlaran/relclosure/render"
)

// checkDoc is the machine-readable output of check.
type checkDoc struct {
	Size         int                 `json:"size"`
	Relation     [][]int             `json:"relation"`
	Properties   relation.Properties `json:"properties"`
	Equivalence  bool                `json:"equivalence"`
	PartialOrder bool                `json:"partial_order"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the properties of a relation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, popts, err := outputSettings()
		if err != nil {
			return err
		}
		r, err := loadRelation(cmd)
		if err != nil {
			return err
		}
		props := relation.CheckAll(r)

		if f != render.FormatText {
			return render.Encode(cmd.OutOrStdout(), f, checkDoc{
				Size:         r.Size(),
				Relation:     r.Bits(),
				Properties:   props,
				Equivalence:  props.IsEquivalence(),
				PartialOrder: props.IsPartialOrder(),
			})
		}

		p := render.NewPrinter(cmd.OutOrStdout(), popts...)
		p.Matrix("Relation R", r)
		p.Properties("Relation properties", props)
		switch {
		case props.IsEquivalence():
			p.Verdict("R is an equivalence relation.")
		case props.IsPartialOrder():
			p.Verdict("R is a partial order.")
		default:
			p.Verdict("R is neither an equivalence relation nor a partial order.")
		}
		return nil
	},
}

func init() {
	addRelationFlags(checkCmd)
}
