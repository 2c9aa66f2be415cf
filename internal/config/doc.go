// Package config manages user-level settings stored at ~/.bundlekit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the form renderer, validation strictness and the credential listing source.
package config
