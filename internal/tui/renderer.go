package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/bundlekit/bundlekit/internal/result"
	"github.com/bundlekit/bundlekit/internal/rules"
	"github.com/charmbracelet/huh"
)

const (
	// cancelLabel labels the negative choice of every confirmation.
	cancelLabel = "Cancel"
	// unsetLabel names the choice that keeps an empty initial value.
	unsetLabel = "(unset)"
)

// Renderer shows forms and credential prompts with huh.
type Renderer struct {
	cfg Config
}

// New creates a Renderer.
func New(cfg Config) *Renderer {
	cfg.Logger = logging.OrDiscard(cfg.Logger)
	return &Renderer{cfg: cfg}
}

// Render implements form.Renderer. All rows share one page ending in a
// confirmation whose affirmative choice carries the action name. Escaping
// or choosing Cancel yields a cancelled result.
func (r *Renderer) Render(ctx context.Context, f *form.Form) (result.Result[form.Values], error) {
	b := newBinding(f)
	confirmed := true

	fields := make([]huh.Field, 0, len(f.Fields)+2)
	fields = append(fields, huh.NewNote().Title(f.Title).Description(f.Heading))
	for i, fld := range f.Fields {
		fields = append(fields, r.field(b, i, fld))
	}
	fields = append(fields, huh.NewConfirm().
		Title(f.Title+"?").
		Affirmative(f.ConfirmLabel).
		Negative(cancelLabel).
		Value(&confirmed))

	if err := r.run(ctx, huh.NewGroup(fields...)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			r.cfg.Logger.Debug("form aborted", "title", f.Title)
			return result.Cancelled[form.Values](), nil
		}
		return result.Cancelled[form.Values](), fmt.Errorf("running form: %w", err)
	}
	if !confirmed {
		return result.Cancelled[form.Values](), nil
	}
	return result.Completed(b.result()), nil
}

func (r *Renderer) field(b *binding, i int, fld form.Field) huh.Field {
	switch fld.Mode() {
	case rules.ModeBoolean, rules.ModeEnum:
		return huh.NewSelect[string]().
			Title(fld.Label).
			Description(fld.Description).
			Options(selectOptions(fld)...).
			Value(&b.values[i])
	case rules.ModeText:
		in := huh.NewInput().
			Title(fld.Label).
			Value(&b.values[i])
		if fld.HasFeedback() {
			in = in.DescriptionFunc(func() string { return b.description(i) }, &b.values)
			if r.cfg.Strict {
				in = in.Validate(r.strictValidator(b, i))
			}
		} else {
			in = in.Description(fld.Description)
		}
		return in
	default:
		panic(fmt.Sprintf("tui: unhandled input mode %v", fld.Mode()))
	}
}

// selectOptions returns the choices of a selector. An initial value that is
// not one of them is offered first, so a selector left untouched keeps it.
func selectOptions(fld form.Field) []huh.Option[string] {
	opts := huh.NewOptions(fld.Rules.Options...)
	if slices.Contains(fld.Rules.Options, fld.Initial) {
		return opts
	}
	label := fld.Initial
	if label == "" {
		label = unsetLabel
	}
	return append([]huh.Option[string]{huh.NewOption(label, fld.Initial)}, opts...)
}

// strictValidator checks field i's text against its rules. Accessible
// prompts keep the current text on a blank answer, so that text is checked
// instead.
func (r *Renderer) strictValidator(b *binding, i int) func(string) error {
	check := validator(b.form.Fields[i].Rules)
	if !r.cfg.Accessible {
		return check
	}
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			s = b.values[i]
		}
		return check(s)
	}
}

// SelectCredentialSet implements credentials.Prompter. With no names a note
// is shown and the prompt is dismissed.
func (r *Renderer) SelectCredentialSet(ctx context.Context, prompt string, names []string) (result.Result[string], error) {
	if len(names) == 0 {
		note := huh.NewNote().
			Title(prompt).
			Description("No credential sets found.").
			Next(true).
			NextLabel(cancelLabel)
		if err := r.run(ctx, huh.NewGroup(note)); err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return result.Cancelled[string](), fmt.Errorf("running credential prompt: %w", err)
		}
		return result.Cancelled[string](), nil
	}

	var choice string
	sel := huh.NewSelect[string]().
		Title(prompt).
		Options(huh.NewOptions(names...)...).
		Value(&choice)
	return r.ask(ctx, sel, &choice)
}

// EnterCredentialSet implements credentials.Prompter.
func (r *Renderer) EnterCredentialSet(ctx context.Context, prompt string) (result.Result[string], error) {
	var name string
	in := huh.NewInput().
		Title(prompt).
		Placeholder("credential set name").
		Value(&name)
	return r.ask(ctx, in, &name)
}

func (r *Renderer) ask(ctx context.Context, field huh.Field, value *string) (result.Result[string], error) {
	if err := r.run(ctx, huh.NewGroup(field)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return result.Cancelled[string](), nil
		}
		return result.Cancelled[string](), fmt.Errorf("running credential prompt: %w", err)
	}
	return result.Completed(strings.TrimSpace(*value)), nil
}

func (r *Renderer) run(ctx context.Context, group *huh.Group) error {
	f := huh.NewForm(group).
		WithTheme(getHuhTheme(r.cfg.Theme)).
		WithAccessible(r.cfg.Accessible)
	if r.cfg.Input != nil {
		f = f.WithInput(r.cfg.Input)
	}
	if r.cfg.Output != nil {
		f = f.WithOutput(r.cfg.Output)
	}
	return f.RunWithContext(ctx)
}
