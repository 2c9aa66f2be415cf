// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	BundleTool  string `yaml:"bundle_tool"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "bundlekit",
			DisplayName: "BundleKit",
			Description: "Collects parameters and credential sets for application bundle operations",
			HomeDir:     ".bundlekit",
			EnvPrefix:   "BUNDLEKIT",
			GoModule:    "github.com/bundlekit/bundlekit",
			BundleTool:  "duffle",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "bundlekit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "BundleKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".bundlekit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BUNDLEKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// BundleTool returns the name of the external bundle tool binary (e.g., "duffle").
func BundleTool() string { load(); return defaults.BundleTool }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "BUNDLEKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
