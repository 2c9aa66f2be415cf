package bundle

import (
	"fmt"
	"path/filepath"
)

// Selection identifies the bundle an operation runs against. The set of
// implementations is closed: FileSelection, RepoSelection and LocalSelection.
type Selection interface {
	isSelection()
}

// FileSelection is a bundle read straight from a manifest file on disk.
type FileSelection struct {
	Path string
}

// RepoSelection is a bundle pulled from a bundle repository and cached
// under the home directory.
type RepoSelection struct {
	Ref Ref
}

// LocalSelection is a bundle built or imported into the local store.
type LocalSelection struct {
	Ref Ref
}

func (FileSelection) isSelection()  {}
func (RepoSelection) isSelection()  {}
func (LocalSelection) isSelection() {}

// Label returns the display label of a selection: the file's base name for
// file bundles, name:version for repo and local bundles.
func Label(s Selection) string {
	switch sel := s.(type) {
	case FileSelection:
		return filepath.Base(sel.Path)
	case *FileSelection:
		return filepath.Base(sel.Path)
	case RepoSelection:
		return sel.Ref.String()
	case *RepoSelection:
		return sel.Ref.String()
	case LocalSelection:
		return sel.Ref.String()
	case *LocalSelection:
		return sel.Ref.String()
	default:
		panic(fmt.Sprintf("bundle: unhandled selection type %T", s))
	}
}

// Kind names the selection variant ("file", "repo" or "local").
func Kind(s Selection) string {
	switch s.(type) {
	case FileSelection, *FileSelection:
		return "file"
	case RepoSelection, *RepoSelection:
		return "repo"
	case LocalSelection, *LocalSelection:
		return "local"
	default:
		panic(fmt.Sprintf("bundle: unhandled selection type %T", s))
	}
}
