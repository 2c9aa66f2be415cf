// Package credentials decides whether a bundle operation needs a credential
// set and, when it does, asks the user to pick or type one.
//
// Credential sets are referenced by name only; this package never reads or
// writes their contents.
package credentials

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/result"
	"github.com/charmbracelet/log"
)

// NoCredentialSet is the completed value reported when the bundle declares no
// credentials and nothing was asked.
const NoCredentialSet = ""

// Lister enumerates the credential sets known to the environment.
type Lister interface {
	ListCredentialSets(ctx context.Context) ([]string, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context) ([]string, error)

// ListCredentialSets implements Lister.
func (f ListerFunc) ListCredentialSets(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// Prompter shows the two credential prompts. Dismissal is a cancelled result;
// errors mean the prompt could not be shown at all.
type Prompter interface {
	// SelectCredentialSet offers names as a selectable list.
	SelectCredentialSet(ctx context.Context, prompt string, names []string) (result.Result[string], error)
	// EnterCredentialSet asks for a credential set name as free text.
	EnterCredentialSet(ctx context.Context, prompt string) (result.Result[string], error)
}

// Resolver runs the credential prompt flow for one bundle at a time.
type Resolver struct {
	lister   Lister
	prompter Prompter
	timeout  time.Duration
	logger   *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithListTimeout bounds how long listing may take. A listing that times out
// is handled like any other listing failure. Zero means no bound.
func WithListTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// WithLogger sets the logger used for flow decisions.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver that lists with l and prompts with p.
func NewResolver(l Lister, p Prompter, opts ...Option) *Resolver {
	r := &Resolver{lister: l, prompter: p}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger)
	return r
}

// Resolve returns the credential set to use for an operation on m.
//
// A bundle without credentials completes with NoCredentialSet and the lister
// is not contacted. Otherwise the known sets are offered as a list; if they
// cannot be listed the user types a name instead. Dismissing either prompt,
// or submitting an empty name, cancels.
func (r *Resolver) Resolve(ctx context.Context, m *manifest.BundleManifest, prompt string) (result.Result[string], error) {
	if !m.HasCredentials() {
		r.logger.Debug("bundle declares no credentials, skipping credential prompt")
		return result.Completed(NoCredentialSet), nil
	}

	names, err := r.list(ctx)
	if err != nil {
		r.logger.Warn("cannot list credential sets, falling back to manual entry", "err", err)
		res, err := r.prompter.EnterCredentialSet(ctx, prompt)
		if err != nil {
			return result.Cancelled[string](), fmt.Errorf("prompting for credential set: %w", err)
		}
		return nonEmpty(res), nil
	}

	r.logger.Debug("offering credential sets", "count", len(names))
	res, err := r.prompter.SelectCredentialSet(ctx, prompt, names)
	if err != nil {
		return result.Cancelled[string](), fmt.Errorf("prompting for credential set: %w", err)
	}
	return nonEmpty(res), nil
}

func (r *Resolver) list(ctx context.Context) ([]string, error) {
	if r.lister == nil {
		return nil, fmt.Errorf("no credential set lister configured")
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	names, err := r.lister.ListCredentialSets(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return names, err
}

// nonEmpty trims a completed name and cancels when nothing is left.
func nonEmpty(res result.Result[string]) result.Result[string] {
	v, ok := res.Value()
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return result.Cancelled[string]()
	}
	return result.Completed(v)
}
