package cli

import (
	"fmt"

	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a bundle manifest against the bundle schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	res, err := manifest.ValidateFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Valid {
		fmt.Fprintf(out, "%s is a valid bundle manifest\n", args[0])
		return nil
	}
	for _, issue := range res.Issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
	return fmt.Errorf("%s: %d schema issue(s)", args[0], len(res.Issues))
}
