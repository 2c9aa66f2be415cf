package rules

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bundlekit/bundlekit/internal/manifest"
)

// Mode is the kind of control used to collect a parameter's value.
type Mode int

const (
	// ModeText is a free-text field.
	ModeText Mode = iota
	// ModeBoolean is a two-way selector between True and False.
	ModeBoolean
	// ModeEnum is a selector over the parameter's allowed values.
	ModeEnum
)

// Literal choices offered by a boolean selector.
const (
	True  = "True"
	False = "False"
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeBoolean:
		return "boolean"
	case ModeEnum:
		return "enum"
	default:
		return "text"
	}
}

// Kind identifies what a Constraint checks.
type Kind int

const (
	// KindNumber requires the value to parse as an integer.
	KindNumber Kind = iota
	// KindMinValue requires an integer value of at least Bound.
	KindMinValue
	// KindMaxValue requires an integer value of at most Bound.
	KindMaxValue
	// KindMinLength requires at least Bound characters.
	KindMinLength
	// KindMaxLength requires at most Bound characters.
	KindMaxLength
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindMinValue:
		return "minValue"
	case KindMaxValue:
		return "maxValue"
	case KindMinLength:
		return "minLength"
	case KindMaxLength:
		return "maxLength"
	default:
		return "unknown"
	}
}

// Constraint is one row of a compiled rule table.
type Constraint struct {
	Kind    Kind
	Bound   int64
	Message string
}

// RuleSet is the compiled form of a parameter definition.
type RuleSet struct {
	Mode Mode
	// Options lists the selectable values for ModeBoolean and ModeEnum.
	Options []string
	// Constraints is evaluated in order by Check; empty for selectors.
	Constraints []Constraint
}

// Compile derives the input mode and constraint table for def. The first
// matching mode wins: bool type, then allowed values, then free text.
func Compile(def manifest.ParameterDefinition) RuleSet {
	if def.EffectiveType() == manifest.TypeBool {
		return RuleSet{Mode: ModeBoolean, Options: []string{True, False}}
	}
	if def.HasAllowedValues() {
		opts := make([]string, len(def.AllowedValues))
		copy(opts, def.AllowedValues)
		return RuleSet{Mode: ModeEnum, Options: opts}
	}

	rs := RuleSet{Mode: ModeText}
	if def.EffectiveType() == manifest.TypeInt {
		rs.Constraints = append(rs.Constraints, Constraint{Kind: KindNumber, Message: notANumber()})
		if def.MinValue != nil {
			rs.Constraints = append(rs.Constraints, Constraint{Kind: KindMinValue, Bound: *def.MinValue, Message: atLeast(*def.MinValue)})
		}
		if def.MaxValue != nil {
			rs.Constraints = append(rs.Constraints, Constraint{Kind: KindMaxValue, Bound: *def.MaxValue, Message: atMost(*def.MaxValue)})
		}
		return rs
	}

	if def.MinLength != nil {
		rs.Constraints = append(rs.Constraints, Constraint{Kind: KindMinLength, Bound: *def.MinLength, Message: atLeastChars(*def.MinLength)})
	}
	if def.MaxLength != nil {
		rs.Constraints = append(rs.Constraints, Constraint{Kind: KindMaxLength, Bound: *def.MaxLength, Message: atMostChars(*def.MaxLength)})
	}
	return rs
}

// HasRules reports whether the field has any constraint and therefore an
// associated feedback line.
func (r RuleSet) HasRules() bool {
	return len(r.Constraints) > 0
}

// Check evaluates every constraint against value and returns the feedback
// text, or "" when the value is valid.
//
// Constraints run in table order and each violation overwrites the feedback
// left by earlier ones, so the last failing rule's message is reported.
// Range checks are skipped when the value is not a number.
func (r RuleSet) Check(value string) string {
	feedback := ""
	var (
		n      int64
		parsed bool
	)
	for _, c := range r.Constraints {
		switch c.Kind {
		case KindNumber:
			v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			n, parsed = v, err == nil
			if !parsed {
				feedback = c.Message
			}
		case KindMinValue:
			if parsed && n < c.Bound {
				feedback = c.Message
			}
		case KindMaxValue:
			if parsed && n > c.Bound {
				feedback = c.Message
			}
		case KindMinLength:
			if int64(utf8.RuneCountInString(value)) < c.Bound {
				feedback = c.Message
			}
		case KindMaxLength:
			if int64(utf8.RuneCountInString(value)) > c.Bound {
				feedback = c.Message
			}
		}
	}
	return feedback
}

// Valid reports whether value satisfies every constraint.
func (r RuleSet) Valid(value string) bool {
	return r.Check(value) == ""
}

// InitialValue returns the text a control starts with: the declared default
// (booleans normalised to True/False) or "" when none is declared.
func InitialValue(def manifest.ParameterDefinition) string {
	if def.DefaultValue == nil {
		return ""
	}
	v := *def.DefaultValue
	if def.EffectiveType() == manifest.TypeBool {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			if b {
				return True
			}
			return False
		}
	}
	return v
}
