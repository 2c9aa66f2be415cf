package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bundlekit/bundlekit/internal/branding"
	"github.com/bundlekit/bundlekit/internal/config"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevelFlag string
	rendererFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` collects the parameters and credential set a bundle operation needs,
validates them against the bundle manifest, and hands them to the ` + branding.BundleTool() + ` CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); overrides log.level")
	rootCmd.PersistentFlags().StringVar(&rendererFlag, "renderer", "", "Prompt renderer (auto, tui, line); overrides ui.renderer")
}

// versionString returns a formatted version string for display.
func versionString() string {
	if buildVersion == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}
