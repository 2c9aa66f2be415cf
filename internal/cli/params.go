package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/prompt"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	paramsSelection selectionFlags
	paramsSets      []string
	paramsAction    string
	paramsOutput    string
)

var paramsCmd = &cobra.Command{
	Use:   "params [<name>[:<version>]]",
	Short: "Ask for a bundle's parameters and print them",
	Long: `Show the parameter form of a bundle and print the confirmed values as name=value
lines, or as JSON or YAML with --output. Nothing is printed when the form is cancelled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParams,
}

func init() {
	paramsSelection.register(paramsCmd)
	paramsCmd.Flags().StringArrayVar(&paramsSets, "set", nil, "Pre-set a parameter value (name=value, repeatable)")
	paramsCmd.Flags().StringVar(&paramsAction, "action", "Install", "Action name shown in the form title and on the confirm button")
	paramsCmd.Flags().StringVarP(&paramsOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(paramsCmd)
}

func runParams(cmd *cobra.Command, args []string) error {
	if err := checkFormat(paramsOutput); err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sel, err := paramsSelection.selection(args)
	if err != nil {
		return err
	}
	m, err := s.store.Load(sel)
	if err != nil {
		return err
	}
	preset, err := parseSetFlags(paramsSets)
	if err != nil {
		return err
	}

	res, err := s.engine.PromptForParameters(cmd.Context(), sel, m, paramsAction,
		fmt.Sprintf("Parameters for %s", bundle.Label(sel)), prompt.WithPreset(preset))
	if err != nil {
		return err
	}
	values, ok := res.Value()
	if !ok {
		return nil
	}
	return printValues(cmd.OutOrStdout(), values, paramsOutput)
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q: use text, json or yaml", format)
	}
}

// printValues writes values sorted by name in the requested format.
func printValues(w io.Writer, values form.Values, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling values: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshaling values: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		for _, k := range sortedKeys(values) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, values[k]); err != nil {
				return err
			}
		}
		return nil
	}
}
