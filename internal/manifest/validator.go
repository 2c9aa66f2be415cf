package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/bundle.schema.json
var schemaBytes []byte

const schemaURL = "bundle.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a structural manifest check.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single schema violation.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/parameters/port/minValue")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// String formats the issue for terminal output.
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw manifest bytes (JSON or YAML) against the bundle schema.
//
// Validation is advisory: Parse accepts manifests that fail it. The error
// return is reserved for undecodable input and schema compilation failures.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationResult{Issues: extractIssues(ve)}, nil
}

// ValidateFile reads a file and validates it against the bundle schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// extractIssues flattens the error tree into leaf issues, sorted by path.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}

	seen := make(map[string]bool, len(issues))
	unique := issues[:0]
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, issue)
	}
	sort.SliceStable(unique, func(i, j int) bool { return unique[i].Path < unique[j].Path })
	return unique
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	keyword := ""
	if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
		keyword = kwPath[len(kwPath)-1]
	}
	// Container keywords only repeat what their causes already say.
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

// normalizeYAML converts decoded YAML into values encoding/json accepts.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, item := range val {
			a[i] = normalizeYAML(item)
		}
		return a
	default:
		return val
	}
}
