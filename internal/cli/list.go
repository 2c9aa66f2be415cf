package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/userdata"
	"github.com/spf13/cobra"
)

// Bundle list orderings.
const (
	sortDefault = "default"
	sortAsc     = "asc"
	sortDesc    = "desc"
)

var (
	listJSON bool
	listSort string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundles in the local store",
	Long: `List the bundles stored under the bundle store and their versions, newest first.
--sort orders bundles by name: default keeps store order, asc and desc sort
case-insensitively.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listSort, "sort", sortDefault, "Sort order (default, asc, desc)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := userdata.GetBundleStoreRoot()
	if err != nil {
		return fmt.Errorf("resolving bundle store: %w", err)
	}
	entries, err := bundle.NewStore(root).List()
	if err != nil {
		return err
	}
	if err := sortEntries(entries, listSort); err != nil {
		return err
	}

	if listJSON {
		if entries == nil {
			entries = []bundle.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No bundles stored yet.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSIONS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, strings.Join(e.Versions, ", "))
	}
	return w.Flush()
}

func sortEntries(entries []bundle.Entry, order string) error {
	switch order {
	case sortDefault, "":
	case sortAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	case sortDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) > strings.ToLower(entries[j].Name)
		})
	default:
		return fmt.Errorf("unknown sort order %q: use %s, %s or %s", order, sortDefault, sortAsc, sortDesc)
	}
	return nil
}
