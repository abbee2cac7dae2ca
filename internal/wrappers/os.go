package wrappers

import (
	"os"
)

// OSWrapper is a wrapper for some functions from std os package
type OSWrapper interface {
	// Stat returns a [FileInfo] describing the named file.
	// If there is an error, it will be of type [*PathError].
	Stat(name string) (os.FileInfo, error)
	// MkdirAll creates a directory named path,
	// along with any necessary parents, and returns nil,
	// or else returns an error.
	// The permission bits perm (before umask) are used for all
	// directories that MkdirAll creates.
	// If path is already a directory, MkdirAll does nothing
	// and returns nil.
	MkdirAll(path string, perm os.FileMode) error
}

// NewOS returns a new instance of OSWrapper interface implementation
func NewOS() OSWrapper {
	return &osWrapper{}
}

type osWrapper struct{}

// Stat returns a [FileInfo] describing the named file.
// If there is an error, it will be of type [*PathError].
func (o *osWrapper) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path,
// along with any necessary parents, and returns nil,
// or else returns an error.
// The permission bits perm (before umask) are used for all
// directories that MkdirAll creates.
// If path is already a directory, MkdirAll does nothing
// and returns nil.
func (o *osWrapper) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
