package cli

import (
	"fmt"
	"strings"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/rules"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	describeSelection selectionFlags
	describeRaw       bool
)

var describeCmd = &cobra.Command{
	Use:   "describe [<name>[:<version>]]",
	Short: "Show the parameters and credentials a bundle asks for",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeSelection.register(describeCmd)
	describeCmd.Flags().BoolVar(&describeRaw, "raw", false, "Print Markdown instead of rendering it")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	sel, err := describeSelection.selection(args)
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	m, err := s.store.Load(sel)
	if err != nil {
		return err
	}

	md := describeMarkdown(bundle.Label(sel), m)
	if describeRaw {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering description: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

// describeMarkdown lists what a form for m would ask for.
func describeMarkdown(label string, m *manifest.BundleManifest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", label)
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}

	b.WriteString("## Parameters\n\n")
	defs := m.Definitions()
	if len(defs) == 0 {
		b.WriteString("This bundle takes no parameters.\n\n")
	} else {
		b.WriteString("| Name | Input | Default | Constraints | Description |\n")
		b.WriteString("|------|-------|---------|-------------|-------------|\n")
		for _, d := range defs {
			rs := rules.Compile(d)
			def := "-"
			if d.DefaultValue != nil {
				def = "`" + rules.InitialValue(d) + "`"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				cell(d.Name), rs.Mode, def, cell(constraintText(rs)), cell(d.Metadata.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Credentials\n\n")
	if !m.HasCredentials() {
		b.WriteString("No credential set is needed.\n")
		return b.String()
	}
	b.WriteString("A credential set must provide:\n\n")
	for _, c := range m.Credentials {
		line := "- `" + c.Name + "`"
		switch {
		case c.Env != "":
			line += " as `$" + c.Env + "`"
		case c.Path != "":
			line += " at `" + c.Path + "`"
		}
		if c.Description != "" {
			line += ": " + c.Description
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func constraintText(rs rules.RuleSet) string {
	if rs.Mode == rules.ModeEnum {
		return "one of " + strings.Join(rs.Options, ", ")
	}
	parts := make([]string, 0, len(rs.Constraints))
	for _, c := range rs.Constraints {
		switch c.Kind {
		case rules.KindNumber:
			parts = append(parts, "integer")
		case rules.KindMinValue:
			parts = append(parts, fmt.Sprintf(">= %d", c.Bound))
		case rules.KindMaxValue:
			parts = append(parts, fmt.Sprintf("<= %d", c.Bound))
		case rules.KindMinLength:
			parts = append(parts, fmt.Sprintf("min %d chars", c.Bound))
		case rules.KindMaxLength:
			parts = append(parts, fmt.Sprintf("max %d chars", c.Bound))
		}
	}
	return strings.Join(parts, ", ")
}

// cell escapes text for a Markdown table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
