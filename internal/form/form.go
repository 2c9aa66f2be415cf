// Package form turns parameter definitions into a renderer-independent form
// specification and tracks the live validation state of a form being filled.
//
// Renderers (console, tui) display a *Form and drive a *State; they never
// evaluate constraints themselves.
package form

import (
	"context"

	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/result"
	"github.com/bundlekit/bundlekit/internal/rules"
)

// Values maps parameter names to the text entered for them.
type Values = map[string]string

// Renderer displays a form and suspends until the user confirms or cancels.
// Cancellation is reported as a cancelled result, never as an error; errors
// are reserved for failures of the display surface itself.
type Renderer interface {
	Render(ctx context.Context, f *Form) (result.Result[Values], error)
}

// Field describes one row of the form.
type Field struct {
	// Name is the parameter name and the key in the result mapping.
	Name string
	// Label is the text shown next to the control.
	Label string
	// Description is the help line under the control ("" when absent).
	Description string
	// Rules holds the input mode, selectable options and constraints.
	Rules rules.RuleSet
	// Initial is the text the control starts with.
	Initial string
}

// Mode returns the field's input mode.
func (f Field) Mode() rules.Mode {
	return f.Rules.Mode
}

// HasFeedback reports whether the field renders a feedback line. Selectors
// never do because they cannot hold an invalid value.
func (f Field) HasFeedback() bool {
	return f.Rules.HasRules()
}

// Form is the structural description of an input-collection surface.
type Form struct {
	// Title names the surface, e.g. "Install helloworld:0.1.0".
	Title string
	// Heading is the prompt text shown above the rows.
	Heading string
	// ConfirmLabel labels the single confirmation action.
	ConfirmLabel string
	Fields       []Field
}

// Build creates the form for defs. The title combines the action name and the
// bundle's display label; the confirm action carries the action name.
func Build(action, bundleLabel, heading string, defs []manifest.ParameterDefinition) *Form {
	f := &Form{
		Title:        action + " " + bundleLabel,
		Heading:      heading,
		ConfirmLabel: action,
		Fields:       make([]Field, 0, len(defs)),
	}
	for _, def := range defs {
		f.Fields = append(f.Fields, Field{
			Name:        def.Name,
			Label:       def.Name,
			Description: def.Metadata.Description,
			Rules:       rules.Compile(def),
			Initial:     rules.InitialValue(def),
		})
	}
	return f
}

// Empty reports whether the form has no fields.
func (f *Form) Empty() bool {
	return f == nil || len(f.Fields) == 0
}

// Field looks up a field by name.
func (f *Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// Prefill replaces the initial text of the named fields. Unknown names are
// returned so callers can report them.
func (f *Form) Prefill(values Values) (unknown []string) {
	for name, v := range values {
		found := false
		for i := range f.Fields {
			if f.Fields[i].Name == name {
				f.Fields[i].Initial = v
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Covers reports whether values supplies every field of the form.
func (f *Form) Covers(values Values) bool {
	for _, fld := range f.Fields {
		if _, ok := values[fld.Name]; !ok {
			return false
		}
	}
	return true
}
