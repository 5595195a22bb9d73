package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// buildVersion is the version line for a binary stamped with ver, rev and at.
// Unstamped fields fall back to the module version and VCS settings in info.
func buildVersion(ver, rev, at string, info *debug.BuildInfo) string {
	if info != nil && ver == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			ver = v
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && rev == "unknown":
				rev = s.Value
				if len(rev) > 7 {
					rev = rev[:7]
				}
			case s.Key == "vcs.time" && at == "unknown":
				at = s.Value
			}
		}
	}

	return fmt.Sprintf("relclosure %s (commit: %s, built: %s)", ver, rev, at)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), buildVersion(version, commit, date, info))
	},
}
