// Package cli defines the Cobra command tree for the bundlekit CLI. Each file
// in this package registers one top-level command (install, params, describe,
// etc.) with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing, I/O formatting,
// and choosing how the user is prompted.
package cli
