package cli

import (
	"github.com/bundlekit/bundlekit/internal/driver"
	"github.com/spf13/cobra"
)

var installFlags actionFlags

var installCmd = &cobra.Command{
	Use:   "install [<name>[:<version>]]",
	Short: "Install a bundle",
	Long: `Install a bundle from the local store, the repository cache (--repo) or a manifest file (--file).

If the bundle declares credentials you pick the credential set to install with. You are then
asked for every declared parameter; values given with --set are used as they are and the form
is skipped when they cover every parameter.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, args, driver.ActionInstall, &installFlags, true)
	},
}

func init() {
	installFlags.register(installCmd, true)
	rootCmd.AddCommand(installCmd)
}
