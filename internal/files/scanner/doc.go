// Package scanner builds code snapshots from a directory tree.
//
// The scanner package is responsible for:
//   - Recursively discovering files whose extension is on the allow-list
//   - Keying each file by its root-relative, forward-slash path
//   - Reading and decoding file content under the configured decode policy
//   - Recording per-file read failures in the snapshot instead of failing
//   - Applying the walk-error policy to directories that cannot be listed
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
