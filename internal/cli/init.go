package cli

import (
	"fmt"

	"github.com/bundlekit/bundlekit/internal/config"
	"github.com/bundlekit/bundlekit/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the home directory, bundle store and credentials directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetHomeRoot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing %s\n", root)

		if err := userdata.InitHome(out); err != nil {
			return fmt.Errorf("initializing home: %w", err)
		}

		fmt.Fprintf(out, "\nSettings are read from %s\n", config.FilePath())
		return nil
	},
}
