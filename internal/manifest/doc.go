// Package manifest decodes bundle manifests and exposes their declared
// parameters and credential requirements. Parameter declarations keep their
// document order and degrade to "no constraint" when individual fields are
// malformed. Structural checks against the embedded JSON schema are available
// separately through Validate.
package manifest
