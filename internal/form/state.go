package form

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by State.Set for a name the form does not have.
var ErrUnknownField = errors.New("unknown field")

// State holds the current text of every control and the feedback shown next
// to each constrained field.
//
// Every change, to any field, re-validates all constrained fields, mirroring
// a single form-wide input listener. Feedback stays empty until the first
// change.
type State struct {
	form     *Form
	values   map[string]string
	feedback map[string]string
}

// NewState starts a state with every field at its initial text.
func NewState(f *Form) *State {
	s := &State{
		form:     f,
		values:   make(map[string]string, len(f.Fields)),
		feedback: make(map[string]string),
	}
	for _, fld := range f.Fields {
		s.values[fld.Name] = fld.Initial
	}
	return s
}

// Form returns the form the state belongs to.
func (s *State) Form() *Form {
	return s.form
}

// Set records new text for a field and re-validates the form.
func (s *State) Set(name, value string) error {
	if _, ok := s.values[name]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	s.values[name] = value
	s.revalidate()
	return nil
}

// Value returns the current text of a field.
func (s *State) Value(name string) string {
	return s.values[name]
}

// Feedback returns the feedback text currently attached to a field.
func (s *State) Feedback(name string) string {
	return s.feedback[name]
}

// Values returns a copy of the current text of every field.
func (s *State) Values() Values {
	out := make(Values, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Invalid returns the names of fields whose current text violates their
// constraints, in form order. It evaluates directly and does not depend on
// whether feedback has been shown yet.
func (s *State) Invalid() []string {
	var names []string
	for _, fld := range s.form.Fields {
		if !fld.Rules.Valid(s.values[fld.Name]) {
			names = append(names, fld.Name)
		}
	}
	return names
}

func (s *State) revalidate() {
	for _, fld := range s.form.Fields {
		if !fld.HasFeedback() {
			continue
		}
		s.feedback[fld.Name] = fld.Rules.Check(s.values[fld.Name])
	}
}
