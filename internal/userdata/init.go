package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// InitHome creates the home directory layout with proper permissions.
// It prints progress messages to w. Existing items are skipped with a message.
func InitHome(w io.Writer) error {
	root, err := GetHomeRoot()
	if err != nil {
		return err
	}
	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	store, err := GetBundleStoreRoot()
	if err != nil {
		return err
	}
	for _, dir := range []string{BundlesDir, RepoDir} {
		if err := ensureDir(w, filepath.Join(store, dir), DirPermNormal); err != nil {
			return err
		}
	}

	// Credential set files reference secrets, keep them private.
	creds, err := GetCredentialsDir()
	if err != nil {
		return err
	}
	return ensureDir(w, creds, DirPermSecure)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
