package cli

import (
	"fmt"
	"path"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/driver"
	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/prompt"
	"github.com/spf13/cobra"
)

// actionFlags are the flags of install, upgrade and uninstall.
type actionFlags struct {
	selectionFlags
	name   string
	sets   []string
	dryRun bool
}

func (f *actionFlags) register(cmd *cobra.Command, withParams bool) {
	f.selectionFlags.register(cmd)
	cmd.Flags().StringVar(&f.name, "name", "", "Installation name (defaults to the bundle name)")
	if withParams {
		cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Pre-set a parameter value (name=value, repeatable)")
	}
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Print the bundle tool command instead of running it")
}

// runAction collects the inputs for action and hands them to the bundle
// tool. A cancelled prompt ends the command quietly.
func runAction(cmd *cobra.Command, args []string, action driver.Action, f *actionFlags, withParams bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sel, err := f.selection(args)
	if err != nil {
		return err
	}
	m, err := s.store.Load(sel)
	if err != nil {
		return err
	}
	preset, err := parseSetFlags(f.sets)
	if err != nil {
		return err
	}

	inv := driver.Invocation{
		Action:       action,
		Selection:    sel,
		Installation: installationName(f.name, sel, m),
	}

	if withParams {
		res, err := s.engine.Collect(cmd.Context(), prompt.Request{
			Selection: sel,
			Manifest:  m,
			Action:    action.Title(),
			Preset:    preset,
		})
		if err != nil {
			return err
		}
		inputs, ok := res.Value()
		if !ok {
			s.logger.Debug("cancelled", "action", action)
			return nil
		}
		inv.CredentialSet = inputs.CredentialSet
		inv.Parameters = inputs.Parameters
	} else {
		res, err := s.engine.PromptForCredentials(cmd.Context(), m,
			fmt.Sprintf("Credential set to %s %s with", action, bundle.Label(sel)))
		if err != nil {
			return err
		}
		credSet, ok := res.Value()
		if !ok {
			s.logger.Debug("cancelled", "action", action)
			return nil
		}
		inv.CredentialSet = credSet
	}

	return execute(cmd, s, inv, f.dryRun)
}

// execute prints or runs the bundle tool command.
func execute(cmd *cobra.Command, s *session, inv driver.Invocation, dryRun bool) error {
	d := &driver.Driver{
		Binary: s.settings.BundleTool,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: s.logger,
	}
	if dryRun {
		line, err := d.CommandLine(inv)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}

	out, err := d.Run(cmd.Context(), inv)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("%s %s exited with code %d", s.settings.BundleTool, inv.Action, out.ExitCode)
	}
	return nil
}

// installationName defaults to the last path segment of the bundle name.
func installationName(flag string, sel bundle.Selection, m *manifest.BundleManifest) string {
	if flag != "" {
		return flag
	}
	switch s := sel.(type) {
	case bundle.RepoSelection:
		return path.Base(s.Ref.Name)
	case bundle.LocalSelection:
		return path.Base(s.Ref.Name)
	}
	if m != nil && m.Name != "" {
		return path.Base(m.Name)
	}
	return ""
}
