package cli

import (
	"github.com/bundlekit/bundlekit/internal/driver"
	"github.com/spf13/cobra"
)

var upgradeFlags actionFlags

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [<name>[:<version>]]",
	Short: "Upgrade an installed bundle",
	Long: `Upgrade an installation to the selected bundle, asking for its credential set and
parameters the same way install does.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args, driver.ActionUpgrade, &upgradeFlags, true)
	},
}

func init() {
	upgradeFlags.register(upgradeCmd, true)
	rootCmd.AddCommand(upgradeCmd)
}
