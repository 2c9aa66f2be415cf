// Package prompt collects the inputs a bundle operation needs: the parameter
// values declared by the bundle manifest and, when the bundle declares
// credentials, the credential set to run with.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bundlekit/bundlekit/internal/bundle"
	"github.com/bundlekit/bundlekit/internal/credentials"
	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/result"
	"github.com/charmbracelet/log"
)

// ErrUnknownParameter is returned when a pre-set value names a parameter the
// bundle does not declare.
var ErrUnknownParameter = errors.New("unknown parameter")

// Engine builds parameter forms, hands them to a renderer and runs the
// credential resolver.
type Engine struct {
	renderer form.Renderer
	resolver *credentials.Resolver
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for flow decisions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an Engine rendering forms with r and resolving
// credential sets with res.
func NewEngine(r form.Renderer, res *credentials.Resolver, opts ...Option) *Engine {
	e := &Engine{renderer: r, resolver: res}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrDiscard(e.logger)
	return e
}

// ParamOption adjusts a single parameter prompt.
type ParamOption func(*paramOptions)

type paramOptions struct {
	preset form.Values
}

// WithPreset supplies values decided before prompting. They become the
// initial text of their fields; when they cover every parameter the form is
// not shown at all.
func WithPreset(values form.Values) ParamOption {
	return func(o *paramOptions) { o.preset = values }
}

// PromptForParameters asks for the parameter values of the bundle selected
// by sel. The form is titled with action and the selection's label, and
// prompt is shown above its rows.
//
// A bundle without parameters completes with an empty mapping and nothing is
// shown. Dismissing the form yields a cancelled result.
func (e *Engine) PromptForParameters(ctx context.Context, sel bundle.Selection, m *manifest.BundleManifest, action, prompt string, opts ...ParamOption) (result.Result[form.Values], error) {
	var o paramOptions
	for _, opt := range opts {
		opt(&o)
	}

	defs := m.Definitions()
	if len(defs) == 0 {
		if len(o.preset) > 0 {
			return result.Cancelled[form.Values](), unknownParameters(mapKeys(o.preset))
		}
		e.logger.Debug("bundle declares no parameters, skipping form")
		return result.Completed(form.Values{}), nil
	}

	f := form.Build(action, bundle.Label(sel), prompt, defs)
	if len(o.preset) > 0 {
		if unknown := f.Prefill(o.preset); len(unknown) > 0 {
			return result.Cancelled[form.Values](), unknownParameters(unknown)
		}
		if f.Covers(o.preset) {
			state := form.NewState(f)
			if invalid := state.Invalid(); len(invalid) > 0 {
				e.logger.Warn("pre-set values violate parameter constraints", "fields", strings.Join(invalid, ","))
			}
			e.logger.Debug("all parameters pre-set, skipping form")
			return result.Completed(state.Values()), nil
		}
	}

	e.logger.Debug("showing parameter form", "title", f.Title, "fields", len(f.Fields))
	res, err := e.renderer.Render(ctx, f)
	if err != nil {
		return result.Cancelled[form.Values](), fmt.Errorf("rendering parameter form: %w", err)
	}
	return res, nil
}

// PromptForCredentials asks for the credential set to use with m. It
// completes with credentials.NoCredentialSet when m declares no credentials.
func (e *Engine) PromptForCredentials(ctx context.Context, m *manifest.BundleManifest, prompt string) (result.Result[string], error) {
	if e.resolver == nil {
		return result.Cancelled[string](), errors.New("no credential resolver configured")
	}
	return e.resolver.Resolve(ctx, m, prompt)
}

// Request describes everything Collect asks for.
type Request struct {
	Selection bundle.Selection
	Manifest  *manifest.BundleManifest
	// Action names the operation, e.g. "Install".
	Action string
	// Preset holds parameter values supplied up front.
	Preset form.Values
}

// Inputs are the collected values for one operation.
type Inputs struct {
	CredentialSet string
	Parameters    form.Values
}

// Collect asks for the credential set first and then for the parameters.
// Cancelling either prompt cancels the whole collection and the second
// prompt is not shown.
func (e *Engine) Collect(ctx context.Context, req Request) (result.Result[Inputs], error) {
	label := bundle.Label(req.Selection)

	creds, err := e.PromptForCredentials(ctx, req.Manifest, fmt.Sprintf("Credential set to %s %s with", strings.ToLower(req.Action), label))
	if err != nil {
		return result.Cancelled[Inputs](), err
	}
	credSet, ok := creds.Value()
	if !ok {
		e.logger.Debug("credential prompt cancelled")
		return result.Cancelled[Inputs](), nil
	}

	params, err := e.PromptForParameters(ctx, req.Selection, req.Manifest, req.Action,
		fmt.Sprintf("Parameters for %s", label), WithPreset(req.Preset))
	if err != nil {
		return result.Cancelled[Inputs](), err
	}
	return result.Map(params, func(v form.Values) Inputs {
		return Inputs{CredentialSet: credSet, Parameters: v}
	}), nil
}

func unknownParameters(names []string) error {
	sort.Strings(names)
	return fmt.Errorf("%w: %s", ErrUnknownParameter, strings.Join(names, ", "))
}

func mapKeys(m form.Values) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
