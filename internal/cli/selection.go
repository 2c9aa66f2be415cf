package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/spf13/cobra"
)

// selectionFlags are shared by every command that targets a bundle.
type selectionFlags struct {
	file string
	repo bool
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Use the bundle manifest at this path instead of a stored bundle")
	cmd.Flags().BoolVar(&f.repo, "repo", false, "Resolve <name>[:<version>] from the repository cache instead of the local store")
}

// selection turns the positional bundle argument and flags into a selection.
func (f *selectionFlags) selection(args []string) (bundle.Selection, error) {
	if f.file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--file and a bundle reference are mutually exclusive")
		}
		if f.repo {
			return nil, fmt.Errorf("--file and --repo are mutually exclusive")
		}
		return bundle.FileSelection{Path: f.file}, nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a bundle reference <name>[:<version>] or --file")
	}
	ref, err := bundle.ParseRef(args[0])
	if err != nil {
		return nil, err
	}
	if f.repo {
		return bundle.RepoSelection{Ref: ref}, nil
	}
	return bundle.LocalSelection{Ref: ref}, nil
}

// parseSetFlags converts repeated name=value flags into values. A later
// flag for the same name wins.
func parseSetFlags(sets []string) (form.Values, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	values := make(form.Values, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		values[name] = value
	}
	return values, nil
}

// sortedKeys returns the keys of values in order.
func sortedKeys(values form.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
