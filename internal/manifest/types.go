package manifest

// ParameterType is the declared data type of a bundle parameter.
type ParameterType string

// Known parameter types. Any other value is treated as TypeString.
const (
	TypeString ParameterType = "string"
	TypeInt    ParameterType = "int"
	TypeBool   ParameterType = "bool"
)

// BundleManifest is the subset of a bundle definition (bundle.json or YAML
// equivalent) that input collection reads.
type BundleManifest struct {
	Name        string      `yaml:"name"`
	Version     string      `yaml:"version"`
	Description string      `yaml:"description,omitempty"`
	Parameters  Parameters  `yaml:"parameters,omitempty"`
	Credentials Credentials `yaml:"credentials,omitempty"`
}

// Parameters holds the declared parameters in document order.
type Parameters []ParameterDefinition

// Credentials holds the declared credential requirements in document order.
type Credentials []CredentialDefinition

// ParameterDefinition describes one declared input. Pointer and nil-slice
// fields are absent when the manifest omits them or declares them with a
// value of the wrong shape.
type ParameterDefinition struct {
	Name          string
	Type          ParameterType
	AllowedValues []string
	DefaultValue  *string
	MinValue      *int64
	MaxValue      *int64
	MinLength     *int64
	MaxLength     *int64
	Metadata      Metadata
}

// Metadata carries display-only information about a parameter.
type Metadata struct {
	Description string
}

// CredentialDefinition names a credential the bundle needs. Only its presence
// matters to input collection; the destination fields are informational.
type CredentialDefinition struct {
	Name        string
	Path        string
	Env         string
	Description string
}

// EffectiveType returns the parameter's type, mapping unknown or empty
// declarations to TypeString.
func (p ParameterDefinition) EffectiveType() ParameterType {
	switch p.Type {
	case TypeInt, TypeBool:
		return p.Type
	default:
		return TypeString
	}
}

// HasAllowedValues reports whether the parameter is restricted to an
// enumerated set. An empty list counts as no restriction.
func (p ParameterDefinition) HasAllowedValues() bool {
	return len(p.AllowedValues) > 0
}

// Definitions returns the bundle's parameter definitions in document order.
// A nil manifest or one without parameters yields an empty slice.
func (m *BundleManifest) Definitions() []ParameterDefinition {
	if m == nil || len(m.Parameters) == 0 {
		return []ParameterDefinition{}
	}
	defs := make([]ParameterDefinition, len(m.Parameters))
	copy(defs, m.Parameters)
	return defs
}

// HasCredentials reports whether the bundle declares any credential
// requirement.
func (m *BundleManifest) HasCredentials() bool {
	return m != nil && len(m.Credentials) > 0
}

// CredentialNames returns the declared credential names in document order.
func (m *BundleManifest) CredentialNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.Credentials))
	for i, c := range m.Credentials {
		names[i] = c.Name
	}
	return names
}
