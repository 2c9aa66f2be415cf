// Package bundle identifies which bundle an operation targets and loads its
// manifest from a file, the local bundle store, or the repository cache.
package bundle
