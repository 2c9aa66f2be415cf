package tui

import (
	"strings"
	"testing"

	"github.com/bundlekit/bundlekit/internal/form"
	"github.com/bundlekit/bundlekit/internal/manifest"
	"github.com/bundlekit/bundlekit/internal/rules"
	"github.com/google/go-cmp/cmp"
)

func i64(n int64) *int64 { return &n }

func str(s string) *string { return &s }

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"", ThemeDefault},
		{"default", ThemeDefault},
		{"Dracula", ThemeDracula},
		{" charm ", ThemeCharm},
		{"catppuccin", ThemeCatppuccin},
		{"base16", ThemeBase16},
		{"solarized", ThemeDefault},
	}
	for _, tt := range tests {
		if got := ParseTheme(tt.in); got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetHuhTheme_NeverNil(t *testing.T) {
	for _, th := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, "other"} {
		if getHuhTheme(th) == nil {
			t.Errorf("getHuhTheme(%q) returned nil", th)
		}
	}
}

func TestBinding_FeedbackFollowsEdits(t *testing.T) {
	f := form.Build("Install", "counter", "", []manifest.ParameterDefinition{
		{Name: "count", Type: manifest.TypeInt, MinValue: i64(1), MaxValue: i64(10), Metadata: manifest.Metadata{Description: "Replicas"}},
		{Name: "name", MinLength: i64(2)},
	})
	b := newBinding(f)

	if got := b.description(0); got != "Replicas" {
		t.Errorf("description before edits = %q, want help text only", got)
	}

	b.values[0] = "15"
	if got := b.description(0); !strings.HasSuffix(got, "Must be at most 10") || !strings.HasPrefix(got, "Replicas\n") {
		t.Errorf("description after 15 = %q", got)
	}
	// Editing count also re-validated name, which is still empty.
	if got := b.description(1); !strings.Contains(got, "Must be at least 2 characters") {
		t.Errorf("name description = %q", got)
	}

	b.values[0] = "5"
	if got := b.description(0); got != "Replicas" {
		t.Errorf("description after 5 = %q, want feedback cleared", got)
	}

	if diff := cmp.Diff(form.Values{"count": "5", "name": ""}, b.result()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestBinding_RoundTripDefaults(t *testing.T) {
	defs := []manifest.ParameterDefinition{
		{Name: "port", Type: manifest.TypeInt, DefaultValue: str("8080")},
		{Name: "debug", Type: manifest.TypeBool, DefaultValue: str("true")},
		{Name: "region", AllowedValues: []string{"east", "west"}, DefaultValue: str("west")},
		{Name: "notes"},
	}
	b := newBinding(form.Build("Install", "x", "", defs))
	want := form.Values{"port": "8080", "debug": rules.True, "region": "west", "notes": ""}
	if diff := cmp.Diff(want, b.result()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator(t *testing.T) {
	rs := rules.Compile(manifest.ParameterDefinition{Name: "n", Type: manifest.TypeInt, MinValue: i64(3)})
	v := validator(rs)
	if err := v("3"); err != nil {
		t.Errorf("validator(3) = %v, want nil", err)
	}
	err := v("2")
	if err == nil || err.Error() != "Must be at least 3" {
		t.Errorf("validator(2) = %v", err)
	}
}
