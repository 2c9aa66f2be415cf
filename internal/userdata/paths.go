package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bundlekit/bundlekit/internal/branding"
)

// Directory names under the home root.
const (
	BundlesDir     = "bundles"
	RepoDir        = "repo"
	CredentialsDir = "credentials"
)

// Permission constants.
const (
	DirPermSecure  os.FileMode = 0700
	FilePermSecure os.FileMode = 0600
	DirPermNormal  os.FileMode = 0755
)

// GetHomeRoot returns the tool's home directory.
// It checks the BUNDLEKIT_HOME environment variable first,
// then falls back to ~/.bundlekit.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetBundleStoreRoot returns the directory holding the local bundle store
// (bundles/) and the repository cache (repo/). BUNDLEKIT_STORE overrides it;
// otherwise it is the home root.
func GetBundleStoreRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("STORE")); v != "" {
		return v, nil
	}
	return GetHomeRoot()
}

// GetCredentialsDir returns the directory scanned for credential set files.
// BUNDLEKIT_CREDENTIALS overrides it; otherwise it is <home>/credentials.
func GetCredentialsDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CREDENTIALS")); v != "" {
		return v, nil
	}
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CredentialsDir), nil
}
