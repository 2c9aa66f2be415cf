package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/logging"
	"github.com/bundlekit/bundlekit/internal/result"
	"github.com/bundlekit/bundlekit/internal/rules"
	"github.com/charmbracelet/log"
)

// clearAnswer, typed at a text prompt, empties the field.
const clearAnswer = "-"

// Renderer asks for each form field in turn on a line-oriented stream.
// Reaching the end of input at any prompt cancels.
type Renderer struct {
	in     *bufio.Reader
	out    io.Writer
	strict bool
	styles styles
	logger *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStrict re-asks a constrained field until its value is valid.
func WithStrict(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a Renderer reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger)
	return r
}

// Render implements form.Renderer.
//
// Text fields show their current value in brackets and keep it on an empty
// answer. Selectors are numbered menus. After the last field the collected
// values are summarised and the user confirms or cancels the action.
func (r *Renderer) Render(ctx context.Context, f *form.Form) (result.Result[form.Values], error) {
	res, err := r.render(ctx, f)
	if errors.Is(err, errEOF) {
		r.logger.Debug("input closed, cancelling form", "title", f.Title)
		fmt.Fprintln(r.out)
		return result.Cancelled[form.Values](), nil
	}
	return res, err
}

func (r *Renderer) render(ctx context.Context, f *form.Form) (result.Result[form.Values], error) {
	state := form.NewState(f)

	fmt.Fprintln(r.out, r.styles.title.Render(f.Title))
	if f.Heading != "" {
		fmt.Fprintln(r.out, f.Heading)
	}

	for _, fld := range f.Fields {
		if err := ctx.Err(); err != nil {
			return result.Cancelled[form.Values](), err
		}
		if err := r.askField(state, fld); err != nil {
			return result.Cancelled[form.Values](), err
		}
	}

	r.summarise(state)
	ok, err := r.confirm(fmt.Sprintf("%s?", f.ConfirmLabel))
	if err != nil {
		return result.Cancelled[form.Values](), err
	}
	if !ok {
		return result.Cancelled[form.Values](), nil
	}
	return result.Completed(state.Values()), nil
}

func (r *Renderer) askField(state *form.State, fld form.Field) error {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.label.Render(fld.Label))
	if fld.Description != "" {
		fmt.Fprintln(r.out, r.styles.help.Render(fld.Description))
	}

	switch fld.Mode() {
	case rules.ModeBoolean, rules.ModeEnum:
		value, changed, err := r.choose(fld.Rules.Options, state.Value(fld.Name))
		if err != nil {
			return err
		}
		if changed {
			return state.Set(fld.Name, value)
		}
		return nil
	case rules.ModeText:
		return r.askText(state, fld)
	default:
		panic(fmt.Sprintf("console: unhandled input mode %v", fld.Mode()))
	}
}

func (r *Renderer) askText(state *form.State, fld form.Field) error {
	for {
		current := state.Value(fld.Name)
		if current != "" {
			fmt.Fprintf(r.out, "%s (%s clears): ", r.styles.current.Render("["+current+"]"), clearAnswer)
		} else {
			fmt.Fprint(r.out, "> ")
		}
		line, err := r.readLine()
		if err != nil {
			return err
		}
		value := current
		switch {
		case strings.TrimSpace(line) == clearAnswer:
			value = ""
		case line != "":
			value = line
		}
		if err := state.Set(fld.Name, value); err != nil {
			return err
		}
		feedback := state.Feedback(fld.Name)
		if feedback == "" {
			return nil
		}
		fmt.Fprintln(r.out, r.styles.feedback.Render(feedback))
		if !r.strict {
			return nil
		}
	}
}

func (r *Renderer) summarise(state *form.State) {
	f := state.Form()
	if f.Empty() {
		return
	}
	width := 0
	for _, fld := range f.Fields {
		width = max(width, len(fld.Label))
	}
	fmt.Fprintln(r.out)
	for _, fld := range f.Fields {
		line := fmt.Sprintf("  %-*s = %s", width, fld.Label, state.Value(fld.Name))
		if fb := state.Feedback(fld.Name); fb != "" {
			line += "  " + r.styles.feedback.Render("("+fb+")")
		}
		fmt.Fprintln(r.out, strings.TrimRight(line, " "))
	}
}
