package cli

import (
	"fmt"

	"github.com/bundlekit/bundlekit/internal/driver"
	"github.com/spf13/cobra"
)

var (
	exportSelection selectionFlags
	exportOutput    string
	exportDryRun    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <name>[:<version>]",
	Short: "Export a stored bundle to a file",
	Long: `Export a bundle from the local store or the repository cache (--repo).

A destination ending in .tgz receives the full bundle including its images; any other
destination receives a thin bundle. Bundles selected with --file cannot be exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportSelection.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Destination file (required)")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "Print the bundle tool command instead of running it")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOutput == "" {
		return fmt.Errorf("--output is required")
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sel, err := exportSelection.selection(args)
	if err != nil {
		return err
	}
	return execute(cmd, s, driver.Invocation{
		Action:    driver.ActionExport,
		Selection: sel,
		Output:    exportOutput,
	}, exportDryRun)
}
