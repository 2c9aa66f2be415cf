package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bundlekit/bundlekit/internal/branding"
	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/charmbracelet/log"
)

// Action is a bundle operation the external tool performs.
type Action string

// Supported actions.
const (
	ActionInstall   Action = "install"
	ActionUpgrade   Action = "upgrade"
	ActionUninstall Action = "uninstall"
	ActionExport    Action = "export"
)

var (
	// ErrUnsupportedAction is returned for actions the driver cannot run.
	ErrUnsupportedAction = errors.New("unsupported action")
	// ErrCannotExportFile is returned when exporting a bundle selected by file.
	ErrCannotExportFile = errors.New("cannot export a bundle selected by file")
	// ErrMissingInstallation is returned when an action needs an
	// installation name and none was given.
	ErrMissingInstallation = errors.New("installation name is required")
)

// Title returns the action name as shown to users, e.g. "Install".
func (a Action) Title() string {
	s := string(a)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Invocation is one call of the bundle tool.
type Invocation struct {
	Action    Action
	Selection bundle.Selection
	// Installation names the installed instance (install, upgrade, uninstall).
	Installation string
	// CredentialSet is passed with -c when non-empty.
	CredentialSet string
	// Parameters are passed as --set name=value, sorted by name.
	Parameters map[string]string
	// Output is the export destination. A .tgz destination exports the full
	// bundle with its images, anything else a thin bundle.
	Output string
}

// Output captures the result of a tool run.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Driver runs the external bundle tool.
type Driver struct {
	// Binary is the tool executable, resolved through PATH.
	Binary string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Command returns the arguments, without the binary, for inv.
func (d *Driver) Command(inv Invocation) ([]string, error) {
	switch inv.Action {
	case ActionInstall:
		if inv.Installation == "" {
			return nil, ErrMissingInstallation
		}
		args := append([]string{"install", inv.Installation}, bundleArgs(inv.Selection)...)
		return append(args, inputArgs(inv)...), nil
	case ActionUpgrade, ActionUninstall:
		if inv.Installation == "" {
			return nil, ErrMissingInstallation
		}
		args := []string{string(inv.Action), inv.Installation}
		if inv.Selection != nil && bundle.Kind(inv.Selection) == "file" {
			args = append(args, bundleArgs(inv.Selection)...)
		}
		return append(args, inputArgs(inv)...), nil
	case ActionExport:
		if inv.Selection == nil {
			return nil, fmt.Errorf("export: no bundle selected")
		}
		if bundle.Kind(inv.Selection) == "file" {
			return nil, ErrCannotExportFile
		}
		if inv.Output == "" {
			return nil, fmt.Errorf("export: no output path")
		}
		args := []string{"export", bundle.Label(inv.Selection), "-o", inv.Output}
		if strings.ToLower(filepath.Ext(inv.Output)) != ".tgz" {
			args = append(args, "--thin")
		}
		return args, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedAction, inv.Action)
	}
}

// CommandLine renders the full command for display, quoting arguments that
// contain whitespace or quotes.
func (d *Driver) CommandLine(inv Invocation) (string, error) {
	args, err := d.Command(inv)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, d.binary())
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " "), nil
}

// Run executes inv, streaming output to the configured writers. A non-zero
// exit is reported through Output.ExitCode, not as an error.
func (d *Driver) Run(ctx context.Context, inv Invocation) (*Output, error) {
	args, err := d.Command(inv)
	if err != nil {
		return nil, err
	}
	bin, err := exec.LookPath(d.binary())
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", d.binary(), err)
	}
	logger := logging.OrDiscard(d.Logger)
	logger.Debug("running bundle tool", "binary", bin, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)

	stdout := d.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := d.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s %s: %w", d.binary(), inv.Action, err)
	}
	return output, nil
}

func (d *Driver) binary() string {
	if d.Binary == "" {
		return branding.BundleTool()
	}
	return d.Binary
}

func bundleArgs(sel bundle.Selection) []string {
	if sel == nil {
		return nil
	}
	switch s := sel.(type) {
	case bundle.FileSelection:
		return []string{"-f", s.Path}
	case *bundle.FileSelection:
		return []string{"-f", s.Path}
	default:
		return []string{bundle.Label(sel)}
	}
}

func inputArgs(inv Invocation) []string {
	var args []string
	if inv.CredentialSet != "" {
		args = append(args, "-c", inv.CredentialSet)
	}
	names := make([]string, 0, len(inv.Parameters))
	for k := range inv.Parameters {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		args = append(args, "--set", k+"="+inv.Parameters[k])
	}
	return args
}
