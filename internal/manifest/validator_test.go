package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"bundle.json", "bundle.yaml", "no-parameters.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	tests := []struct {
		file string
		desc string
	}{
		{"invalid-missing-name.yaml", "missing required name field"},
		{"invalid-bad-type.yaml", "unknown parameter type and non-integer bound"},
		{"malformed-fields.yaml", "wrongly shaped parameter fields"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_IssuePaths(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-type.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}

	var sawType, sawMin bool
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Errorf("issue at %q has empty message", issue.Path)
		}
		switch issue.Path {
		case "/parameters/port/type":
			sawType = true
		case "/parameters/port/minValue":
			sawMin = true
		}
	}
	if !sawType || !sawMin {
		t.Errorf("expected issues at port/type and port/minValue, got %v", result.Issues)
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{Path: "/name", Message: "missing"}
	if got := issue.String(); !strings.HasPrefix(got, "/name: ") {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "root"}).String(); got != "root" {
		t.Errorf("String() = %q, want %q", got, "root")
	}
}

func TestNormalizeYAML_NonStringKeys(t *testing.T) {
	in := map[any]any{1: []any{map[any]any{"k": true}}}
	out, ok := normalizeYAML(in).(map[string]any)
	if !ok {
		t.Fatalf("normalizeYAML returned %T", normalizeYAML(in))
	}
	if _, ok := out["1"]; !ok {
		t.Errorf("expected stringified key, got %v", out)
	}
}
