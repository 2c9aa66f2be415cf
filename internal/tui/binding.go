package tui

import (
	"errors"

	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/rules"
)

// binding connects the value slots edited by huh controls to a form.State.
// Every control's description is recomputed from the shared slots, so a
// change to any field refreshes the feedback of all of them.
type binding struct {
	form   *form.Form
	state  *form.State
	values []string
}

func newBinding(f *form.Form) *binding {
	b := &binding{
		form:   f,
		state:  form.NewState(f),
		values: make([]string, len(f.Fields)),
	}
	for i, fld := range f.Fields {
		b.values[i] = fld.Initial
	}
	return b
}

// sync pushes edited slots into the state. Unchanged slots are skipped so
// feedback stays empty until the user edits something.
func (b *binding) sync() {
	for i, fld := range b.form.Fields {
		if b.state.Value(fld.Name) != b.values[i] {
			_ = b.state.Set(fld.Name, b.values[i])
		}
	}
}

// description renders the help line of field i followed by its feedback.
func (b *binding) description(i int) string {
	b.sync()
	fld := b.form.Fields[i]
	feedback := b.state.Feedback(fld.Name)
	switch {
	case feedback == "":
		return fld.Description
	case fld.Description == "":
		return "⚠ " + feedback
	default:
		return fld.Description + "\n⚠ " + feedback
	}
}

// result returns the confirmed values.
func (b *binding) result() form.Values {
	b.sync()
	return b.state.Values()
}

// validator adapts a rule set to a huh validation function.
func validator(rs rules.RuleSet) func(string) error {
	return func(s string) error {
		if msg := rs.Check(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
