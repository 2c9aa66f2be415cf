package cli

import (
	"encoding/json"
	"fmt"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	credsSelection selectionFlags
	credsOutput    string
)

var credsCmd = &cobra.Command{
	Use:   "creds [<name>[:<version>]]",
	Short: "Pick the credential set for a bundle and print it",
	Long: `Ask for the credential set to use with a bundle and print its name. Bundles that
declare no credentials print nothing without asking. Known credential sets are listed
with the bundle tool (credentials.source=exec) or read from a directory
(credentials.source=dir); when they cannot be listed the name is typed in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreds,
}

func init() {
	credsSelection.register(credsCmd)
	credsCmd.Flags().StringVarP(&credsOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(credsCmd)
}

type credsResult struct {
	Required      bool   `json:"required" yaml:"required"`
	CredentialSet string `json:"credentialSet,omitempty" yaml:"credentialSet,omitempty"`
}

func runCreds(cmd *cobra.Command, args []string) error {
	if err := checkFormat(credsOutput); err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sel, err := credsSelection.selection(args)
	if err != nil {
		return err
	}
	m, err := s.store.Load(sel)
	if err != nil {
		return err
	}

	res, err := s.engine.PromptForCredentials(cmd.Context(), m, fmt.Sprintf("Credential set for %s", bundle.Label(sel)))
	if err != nil {
		return err
	}
	name, ok := res.Value()
	if !ok {
		return nil
	}

	out := credsResult{Required: m.HasCredentials(), CredentialSet: name}
	w := cmd.OutOrStdout()
	switch credsOutput {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		w.Write(data)
	default:
		if out.Required {
			fmt.Fprintln(w, name)
		}
	}
	return nil
}
