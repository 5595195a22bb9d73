package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/relclosure/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     = zap.NewNop()

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "relclosure",
	Short: "Binary relation properties and equivalence closure",
	Long: `relclosure - binary relation properties and equivalence closure

relclosure checks a binary relation on {1..n} for reflexivity, symmetry and
transitivity, computes its equivalence closure t(s(r(R))) and prints the
equivalence classes of the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		logger, err = buildLogger(verbose, quiet)
		if err != nil {
			return cli.GeneralError("initializing logger", err)
		}
		logger.Debug("configuration loaded", zap.String("path", configPath))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs
const (
	groupRelation = "relation"
	groupUtility  = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover relclosure.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupRelation, Title: "Relation:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	for _, c := range []*cobra.Command{analyzeCmd, checkCmd, closureCmd, partitionCmd} {
		c.GroupID = groupRelation
		rootCmd.AddCommand(c)
	}

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// buildLogger returns a production zap logger at Warn, lowered one level per
// -v and raised to Error by -q.
func buildLogger(verbosity int, silent bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	switch {
	case silent:
		level = zapcore.ErrorLevel
	case verbosity >= 2:
		level = zapcore.DebugLevel
	case verbosity == 1:
		level = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
