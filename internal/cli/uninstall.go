package cli

import (
	"github.com/bundlekit/bundlekit/internal/driver"
	"github.com/spf13/cobra"
)

var uninstallFlags actionFlags

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [<name>[:<version>]]",
	Short: "Uninstall a bundle",
	Long:  `Uninstall an installation. Only the credential set is asked for; parameters are not.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args, driver.ActionUninstall, &uninstallFlags, false)
	},
}

func init() {
	uninstallFlags.register(uninstallCmd, false)
	rootCmd.AddCommand(uninstallCmd)
}
