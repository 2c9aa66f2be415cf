package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse decodes a bundle manifest from JSON or YAML bytes.
//
// Structural problems inside individual parameter or credential entries never
// fail the parse: a field with the wrong shape is dropped and the entry keeps
// its name. Only input that is not a YAML/JSON document at all is an error.
func Parse(data []byte) (*BundleManifest, error) {
	var m BundleManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing bundle manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes the bundle manifest at path.
func ParseFile(path string) (*BundleManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// UnmarshalYAML walks the parameters mapping node so declaration order
// survives decoding.
func (p *Parameters) UnmarshalYAML(node *yaml.Node) error {
	*p = nil
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		*p = append(*p, decodeParameter(name, node.Content[i+1]))
	}
	return nil
}

// UnmarshalYAML records every declared credential name, tolerating any shape
// for the credential's details.
func (c *Credentials) UnmarshalYAML(node *yaml.Node) error {
	*c = nil
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		def := CredentialDefinition{Name: node.Content[i].Value}
		eachField(node.Content[i+1], func(key string, value *yaml.Node) {
			switch key {
			case "path":
				def.Path = scalarText(value)
			case "env":
				def.Env = scalarText(value)
			case "description":
				def.Description = scalarText(value)
			}
		})
		*c = append(*c, def)
	}
	return nil
}

func decodeParameter(name string, node *yaml.Node) ParameterDefinition {
	def := ParameterDefinition{Name: name}
	eachField(node, func(key string, value *yaml.Node) {
		switch key {
		case "type":
			def.Type = ParameterType(strings.TrimSpace(scalarText(value)))
		case "allowedValues":
			def.AllowedValues = scalarList(value)
		case "defaultValue":
			if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
				v := value.Value
				def.DefaultValue = &v
			}
		case "minValue":
			def.MinValue = intValue(value)
		case "maxValue":
			def.MaxValue = intValue(value)
		case "minLength":
			def.MinLength = intValue(value)
		case "maxLength":
			def.MaxLength = intValue(value)
		case "metadata":
			eachField(value, func(k string, v *yaml.Node) {
				if k == "description" {
					def.Metadata.Description = scalarText(v)
				}
			})
		}
	})
	return def
}

// eachField calls fn for every key/value pair of a mapping node. Non-mapping
// nodes have no fields.
func eachField(node *yaml.Node, fn func(key string, value *yaml.Node)) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fn(node.Content[i].Value, node.Content[i+1])
	}
}

func scalarText(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

func scalarList(node *yaml.Node) []string {
	if node.Kind != yaml.SequenceNode {
		return nil
	}
	values := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind == yaml.ScalarNode {
			values = append(values, item.Value)
		}
	}
	return values
}

func intValue(node *yaml.Node) *int64 {
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		return nil
	}
	return &n
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
