package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/relclosure/input"
	"github.com/katalvlaran/relclosure/internal/cli"
	"github.com/katalvlaran/relclosure/relation"
	"github.com/katalvlaran/relclosure/render"
)

// Flags shared by every relation command.
var (
	inputFile    string
	inputSize    int
	outputFormat string
)

func addRelationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "relation file (.yaml, .yml, .json, .txt); interactive input when empty")
	cmd.Flags().IntVarP(&inputSize, "size", "n", 0, "number of elements for interactive input (default from config)")
	cmd.Flags().StringVarP(&outputFormat, "format", "o", "", "output format: text, yaml or json (default from config)")
}

// loadRelation reads the relation from the resolved file, or row by row from
// stdin with prompts on stderr.
func loadRelation(cmd *cobra.Command) (*relation.Relation, error) {
	if path := cfg.ResolvedFile(inputFile); path != "" {
		r, err := input.LoadFile(path)
		if err != nil {
			return nil, cli.InputError("reading "+path, err)
		}
		logger.Debug("relation loaded", zap.String("file", path), zap.Int("size", r.Size()))
		return r, nil
	}

	rd := input.NewReader(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.ResolvedSize(inputSize), input.WithLogger(logger))
	r, err := rd.ReadMatrix()
	if err != nil {
		return nil, cli.InputError("reading relation", err)
	}
	return r, nil
}

// outputSettings resolves the output format and the printer options.
func outputSettings() (render.Format, []render.PrinterOption, error) {
	f, err := render.ParseFormat(cfg.ResolvedFormat(outputFormat))
	if err != nil {
		return "", nil, cli.ConfigError("resolving output format", err)
	}
	color := cfg.Output.Color && !noColor
	return f, []render.PrinterOption{render.WithColor(color)}, nil
}
