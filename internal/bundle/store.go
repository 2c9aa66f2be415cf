package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/bundlekit/bundlekit/internal/manifest"
)

// Store layout under the home directory.
const (
	BundlesDir   = "bundles"
	RepoDir      = "repo"
	ManifestFile = "bundle.json"
	LatestDir    = "latest"
)

var (
	// ErrRepoNotCached is returned when a repo bundle has not been pulled.
	ErrRepoNotCached = errors.New("repository bundle is not cached")
	// ErrBundleNotFound is returned when a local bundle is not in the store.
	ErrBundleNotFound = errors.New("bundle not found in local store")
)

// Store resolves selections to manifest files under a home directory.
type Store struct {
	Home string
}

// NewStore returns a store rooted at home.
func NewStore(home string) *Store {
	return &Store{Home: home}
}

// ManifestPath returns the manifest file backing a selection.
//
// Local bundles without a version resolve to the highest semantic version in
// the store, or to the "latest" directory when no versioned copy exists. Repo
// bundles must name a version.
func (s *Store) ManifestPath(sel Selection) (string, error) {
	switch v := sel.(type) {
	case FileSelection:
		return v.Path, nil
	case *FileSelection:
		return v.Path, nil
	case RepoSelection:
		return s.repoPath(v.Ref)
	case *RepoSelection:
		return s.repoPath(v.Ref)
	case LocalSelection:
		return s.localPath(v.Ref)
	case *LocalSelection:
		return s.localPath(v.Ref)
	default:
		panic(fmt.Sprintf("bundle: unhandled selection type %T", sel))
	}
}

// Load reads and parses the manifest backing a selection.
func (s *Store) Load(sel Selection) (*manifest.BundleManifest, error) {
	path, err := s.ManifestPath(sel)
	if err != nil {
		return nil, err
	}
	m, err := manifest.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", Label(sel), err)
	}
	return m, nil
}

func (s *Store) repoPath(ref Ref) (string, error) {
	if ref.Version == "" {
		return "", fmt.Errorf("%w: %s has no version", ErrRepoNotCached, ref.Name)
	}
	path := filepath.Join(s.Home, RepoDir, ref.Name, ref.Version, ManifestFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRepoNotCached, ref)
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) localPath(ref Ref) (string, error) {
	dir := filepath.Join(s.Home, BundlesDir, ref.Name)
	version := ref.Version
	if version == "" {
		v, err := highestVersion(dir)
		if err != nil {
			return "", err
		}
		version = v
	}
	path := filepath.Join(dir, version, ManifestFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrBundleNotFound, ref)
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	return path, nil
}

// Versions lists the semantic versions stored for a local bundle, newest
// first. Directories whose names are not versions are skipped.
func (s *Store) Versions(name string) ([]string, error) {
	dir := filepath.Join(s.Home, BundlesDir, name)
	versions, err := storedVersions(dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.Original()
	}
	return out, nil
}

func highestVersion(dir string) (string, error) {
	versions, err := storedVersions(dir)
	if err != nil {
		return "", err
	}
	if len(versions) > 0 {
		return versions[0].Original(), nil
	}
	return LatestDir, nil
}

func storedVersions(dir string) ([]*semver.Version, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bundle store: %w", err)
	}
	var versions []*semver.Version
	for _, e := range entries {
		if !e.IsDir() || e.Name() == LatestDir {
			continue
		}
		v, err := semver.NewVersion(e.Name())
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(semver.Collection(versions)))
	return versions, nil
}

// Entry is one bundle in the local store.
type Entry struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// List returns the bundles in the local store in directory order. Versions
// are newest first; a bundle holding only a "latest" copy lists that.
func (s *Store) List() ([]Entry, error) {
	root := filepath.Join(s.Home, BundlesDir)
	dirs, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bundle store: %w", err)
	}
	var entries []Entry
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		versions, err := s.Versions(d.Name())
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			if _, err := os.Stat(filepath.Join(root, d.Name(), LatestDir, ManifestFile)); err != nil {
				continue
			}
			versions = []string{LatestDir}
		}
		entries = append(entries, Entry{Name: d.Name(), Versions: versions})
	}
	return entries, nil
}
