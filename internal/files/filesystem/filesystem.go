package filesystem

import (
	"fmt"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walked root, using the
	// provider's native separator
	RelativePath() string

	// Info returns file metadata. Symbolic links are reported with the
	// metadata of their target when the target exists.
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// WalkError reports a path that could not be visited during Walk.
// For a directory this means its entries could not be listed.
type WalkError struct {
	Path         string
	RelativePath string
	Err          error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree depth-first, calling fn for each file
	// and directory. When a path cannot be visited fn receives a nil File and a
	// *WalkError; returning nil skips that path and continues the walk.
	// Any other error returned by fn stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path in a single call, creating or truncating it
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Abs returns an absolute form of path in the provider's namespace
	Abs(path string) (string, error)
}
