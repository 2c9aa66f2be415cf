package bundle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidRef is returned by ParseRef for malformed references.
var ErrInvalidRef = errors.New("invalid bundle reference")

// Ref names a bundle and, optionally, one of its versions.
type Ref struct {
	Name    string
	Version string
}

// String formats the ref as name:version, or just name when unversioned.
func (r Ref) String() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + ":" + r.Version
}

// ParseRef parses "<name>[:<version>]". The version must be a semantic
// version; a leading "v" is accepted and dropped.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	name, version, hasVersion := strings.Cut(s, ":")
	if name == "" {
		return Ref{}, fmt.Errorf("%w %q: missing name", ErrInvalidRef, s)
	}
	if !hasVersion {
		return Ref{Name: name}, nil
	}
	v, err := parseVersion(version)
	if err != nil {
		return Ref{}, fmt.Errorf("%w %q: %v", ErrInvalidRef, s, err)
	}
	return Ref{Name: name, Version: v.Original()}, nil
}

// parseVersion strips a leading "v" and parses the version string.
func parseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	if version == "" {
		return nil, errors.New("empty version")
	}
	return semver.NewVersion(version)
}
