package rules

import (
	"strconv"
	"strings"
	"testing"

	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/google/go-cmp/cmp"
)

func i64(n int64) *int64 { return &n }

func str(s string) *string { return &s }

var sampleInputs = []string{"", "0", "-1", "42", "abc", "True", "False", "a very long value indeed", " 7 "}

func TestCompile_BoolIsAlwaysValid(t *testing.T) {
	defs := []manifest.ParameterDefinition{
		{Name: "plain", Type: manifest.TypeBool},
		{Name: "with-bounds", Type: manifest.TypeBool, MinValue: i64(5), MinLength: i64(3)},
		{Name: "with-allowed", Type: manifest.TypeBool, AllowedValues: []string{"yes", "no"}},
	}
	for _, def := range defs {
		t.Run(def.Name, func(t *testing.T) {
			rs := Compile(def)
			if rs.Mode != ModeBoolean {
				t.Fatalf("Mode = %v, want boolean", rs.Mode)
			}
			if diff := cmp.Diff([]string{True, False}, rs.Options); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
			if rs.HasRules() {
				t.Error("boolean selector should have no rules")
			}
			for _, in := range sampleInputs {
				if !rs.Valid(in) {
					t.Errorf("Valid(%q) = false, want true", in)
				}
			}
		})
	}
}

func TestCompile_AllowedValuesOverrideType(t *testing.T) {
	for _, typ := range []manifest.ParameterType{"", manifest.TypeString, manifest.TypeInt, "custom"} {
		t.Run(string(typ), func(t *testing.T) {
			def := manifest.ParameterDefinition{
				Name:          "region",
				Type:          typ,
				AllowedValues: []string{"east", "west"},
				MinValue:      i64(100),
				MaxLength:     i64(1),
			}
			rs := Compile(def)
			if rs.Mode != ModeEnum {
				t.Fatalf("Mode = %v, want enum", rs.Mode)
			}
			if diff := cmp.Diff(def.AllowedValues, rs.Options); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
			for _, in := range sampleInputs {
				if fb := rs.Check(in); fb != "" {
					t.Errorf("Check(%q) = %q, want valid", in, fb)
				}
			}
		})
	}
}

func TestCompile_IntMinBoundary(t *testing.T) {
	for _, m := range []int64{-10, 0, 1, 1024} {
		t.Run(strconv.FormatInt(m, 10), func(t *testing.T) {
			rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt, MinValue: i64(m)})
			if fb := rs.Check(strconv.FormatInt(m, 10)); fb != "" {
				t.Errorf("Check(m) = %q, want valid", fb)
			}
			want := "Must be at least " + strconv.FormatInt(m, 10)
			if fb := rs.Check(strconv.FormatInt(m-1, 10)); fb != want {
				t.Errorf("Check(m-1) = %q, want %q", fb, want)
			}
		})
	}
}

func TestCompile_IntRange(t *testing.T) {
	rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt, MinValue: i64(1), MaxValue: i64(10)})

	tests := []struct {
		in   string
		want string
	}{
		{"1", ""},
		{"5", ""},
		{"10", ""},
		{"0", "Must be at least 1"},
		{"-3", "Must be at least 1"},
		{"11", "Must be at most 10"},
		{"15", "Must be at most 10"},
		{"", "Must be a number"},
		{"ten", "Must be a number"},
		{"12abc", "Must be a number"},
		{"3.5", "Must be a number"},
		{" 4 ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := rs.Check(tt.in); got != tt.want {
				t.Errorf("Check(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompile_IntWithoutBoundsStillRequiresNumber(t *testing.T) {
	rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt})
	if !rs.HasRules() {
		t.Fatal("int field should carry the number rule")
	}
	if got := rs.Check("x"); got != "Must be a number" {
		t.Errorf("Check(x) = %q", got)
	}
	if got := rs.Check("-99"); got != "" {
		t.Errorf("Check(-99) = %q, want valid", got)
	}
}

func TestCheck_LastViolationWins(t *testing.T) {
	// An inverted range makes both range checks fail for the same value; the
	// max check runs last and its message is the one reported.
	rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt, MinValue: i64(10), MaxValue: i64(5)})
	if got := rs.Check("7"); got != "Must be at most 5" {
		t.Errorf("Check(7) = %q, want max message", got)
	}

	lengths := Compile(manifest.ParameterDefinition{MinLength: i64(5), MaxLength: i64(2)})
	if got := lengths.Check("abc"); got != "Must be at most 2 characters" {
		t.Errorf("Check(abc) = %q, want maxLength message", got)
	}
}

func TestCompile_StringLengthBoundaries(t *testing.T) {
	for _, tc := range []struct{ a, b int64 }{{1, 1}, {2, 5}, {3, 10}} {
		t.Run(strconv.FormatInt(tc.a, 10)+"-"+strconv.FormatInt(tc.b, 10), func(t *testing.T) {
			rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeString, MinLength: i64(tc.a), MaxLength: i64(tc.b)})
			if got := rs.Check(strings.Repeat("x", int(tc.a))); got != "" {
				t.Errorf("length a: %q", got)
			}
			if got := rs.Check(strings.Repeat("x", int(tc.b))); got != "" {
				t.Errorf("length b: %q", got)
			}
			wantMin := "Must be at least " + strconv.FormatInt(tc.a, 10) + " characters"
			if got := rs.Check(strings.Repeat("x", int(tc.a-1))); got != wantMin {
				t.Errorf("length a-1: %q, want %q", got, wantMin)
			}
			wantMax := "Must be at most " + strconv.FormatInt(tc.b, 10) + " characters"
			if got := rs.Check(strings.Repeat("x", int(tc.b+1))); got != wantMax {
				t.Errorf("length b+1: %q, want %q", got, wantMax)
			}
		})
	}
}

func TestCheck_LengthCountsCharacters(t *testing.T) {
	rs := Compile(manifest.ParameterDefinition{MaxLength: i64(3)})
	if got := rs.Check("héé"); got != "" {
		t.Errorf("three-character value rejected: %q", got)
	}
}

func TestCompile_UnconstrainedStringHasNoRules(t *testing.T) {
	for _, def := range []manifest.ParameterDefinition{
		{Name: "plain"},
		{Name: "typed", Type: manifest.TypeString},
		{Name: "unknown", Type: "object"},
		{Name: "numeric-bounds-ignored", Type: manifest.TypeString, MinValue: i64(1), MaxValue: i64(2)},
	} {
		t.Run(def.Name, func(t *testing.T) {
			rs := Compile(def)
			if rs.Mode != ModeText {
				t.Errorf("Mode = %v, want text", rs.Mode)
			}
			if rs.HasRules() {
				t.Errorf("expected no rules, got %+v", rs.Constraints)
			}
			for _, in := range sampleInputs {
				if got := rs.Check(in); got != "" {
					t.Errorf("Check(%q) = %q", in, got)
				}
			}
		})
	}
}

func TestCompile_LengthBoundsIgnoredOnInt(t *testing.T) {
	rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt, MinLength: i64(5)})
	if got := rs.Check("7"); got != "" {
		t.Errorf("Check(7) = %q, length bound should not apply to int", got)
	}
}

func TestCompile_LargeBoundsAreNotGrouped(t *testing.T) {
	rs := Compile(manifest.ParameterDefinition{Type: manifest.TypeInt, MinValue: i64(1024)})
	if got := rs.Check("80"); got != "Must be at least 1024" {
		t.Errorf("Check(80) = %q", got)
	}
}

func TestInitialValue(t *testing.T) {
	tests := []struct {
		name string
		def  manifest.ParameterDefinition
		want string
	}{
		{"none", manifest.ParameterDefinition{}, ""},
		{"string", manifest.ParameterDefinition{DefaultValue: str("hello")}, "hello"},
		{"int", manifest.ParameterDefinition{Type: manifest.TypeInt, DefaultValue: str("8080")}, "8080"},
		{"bool true", manifest.ParameterDefinition{Type: manifest.TypeBool, DefaultValue: str("true")}, True},
		{"bool false", manifest.ParameterDefinition{Type: manifest.TypeBool, DefaultValue: str("false")}, False},
		{"bool literal", manifest.ParameterDefinition{Type: manifest.TypeBool, DefaultValue: str("True")}, True},
		{"bool garbage kept", manifest.ParameterDefinition{Type: manifest.TypeBool, DefaultValue: str("maybe")}, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialValue(tt.def); got != tt.want {
				t.Errorf("InitialValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModeAndKindStrings(t *testing.T) {
	if ModeText.String() != "text" || ModeBoolean.String() != "boolean" || ModeEnum.String() != "enum" {
		t.Error("unexpected Mode strings")
	}
	if KindMaxLength.String() != "maxLength" || Kind(99).String() != "unknown" {
		t.Error("unexpected Kind strings")
	}
}
