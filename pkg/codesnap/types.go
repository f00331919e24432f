package codesnap

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DecodePolicy selects how file bytes that are not valid UTF-8 are turned
// into snapshot text.
type DecodePolicy string

const (
	// DecodeIgnore drops invalid byte sequences.
	DecodeIgnore DecodePolicy = "ignore"
	// DecodeReplace substitutes U+FFFD for each invalid sequence.
	DecodeReplace DecodePolicy = "replace"
	// DecodeStrict treats invalid UTF-8 as a read error for that file.
	DecodeStrict DecodePolicy = "strict"
)

// ParseDecodePolicy converts a user-supplied value into a DecodePolicy.
// The empty string yields DecodeIgnore.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch DecodePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", DecodeIgnore:
		return DecodeIgnore, nil
	case DecodeReplace:
		return DecodeReplace, nil
	case DecodeStrict:
		return DecodeStrict, nil
	}
	return "", fmt.Errorf("%w: unknown decode policy %q (want ignore, replace or strict)", ErrInvalidConfig, s)
}

// WalkErrorPolicy selects what happens when a directory inside the scan root
// cannot be read.
type WalkErrorPolicy string

const (
	// WalkSkip logs the directory, records it in Result.Skipped and continues.
	WalkSkip WalkErrorPolicy = "skip"
	// WalkAbort stops the scan with ErrWalkFailed.
	WalkAbort WalkErrorPolicy = "abort"
)

// ParseWalkErrorPolicy converts a user-supplied value into a WalkErrorPolicy.
// The empty string yields WalkSkip.
func ParseWalkErrorPolicy(s string) (WalkErrorPolicy, error) {
	switch WalkErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", WalkSkip:
		return WalkSkip, nil
	case WalkAbort:
		return WalkAbort, nil
	}
	return "", fmt.Errorf("%w: unknown walk error policy %q (want skip or abort)", ErrInvalidConfig, s)
}

// ExtensionSet is an allow-list of lowercase file extensions with a leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from raw extension strings.
// Entries are trimmed, lowercased and given a leading dot; blank entries are dropped.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		if normalized := NormalizeExtension(ext); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// NormalizeExtension returns ext trimmed, lowercased and dot-prefixed,
// or "" if nothing remains.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Matches reports whether the extension of name is in the set.
// Comparison is case-insensitive. Leading dots are part of the base name,
// so ".json" has no extension while ".eslintrc.json" has ".json".
func (s ExtensionSet) Matches(name string) bool {
	ext := filepath.Ext(strings.TrimLeft(filepath.Base(name), "."))
	if ext == "" {
		return false
	}
	_, ok := s[strings.ToLower(ext)]
	return ok
}

// Sorted returns the extensions in lexical order.
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Config is the complete configuration of one snapshot run.
// It is immutable for the duration of the run.
type Config struct {
	// Root is the directory to scan. Relative paths resolve against the working directory.
	Root string

	// Output is the path of the JSON file to write.
	Output string

	// Extensions is the allow-list of qualifying file extensions.
	Extensions ExtensionSet

	// Decode controls handling of invalid UTF-8 in file content.
	Decode DecodePolicy

	// OnWalkError controls handling of unreadable directories below the root.
	OnWalkError WalkErrorPolicy

	// Verbose enables diagnostic logging.
	Verbose bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:        DefaultRoot,
		Output:      DefaultOutputPath,
		Extensions:  NewExtensionSet(DefaultExtensions...),
		Decode:      DecodeIgnore,
		OnWalkError: WalkSkip,
	}
}

// Validate checks that the configuration can drive a run.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("%w: scan root is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one extension is required", ErrInvalidConfig)
	}
	for ext := range c.Extensions {
		if ext != NormalizeExtension(ext) {
			return fmt.Errorf("%w: extension %q is not normalized", ErrInvalidConfig, ext)
		}
	}
	if _, err := ParseDecodePolicy(string(c.Decode)); err != nil {
		return err
	}
	if _, err := ParseWalkErrorPolicy(string(c.OnWalkError)); err != nil {
		return err
	}
	return nil
}

// Result is the outcome of building a snapshot.
type Result struct {
	// Snapshot holds one entry per qualifying file.
	Snapshot *Snapshot

	// Skipped lists directories (relative, slash-separated) that could not be
	// read and were skipped under WalkSkip.
	Skipped []string

	// ReadErrors counts entries whose value records a read failure.
	ReadErrors int
}

// PersistSummary describes a written snapshot file.
type PersistSummary struct {
	// Path is the file that was written.
	Path string

	// Bytes is the size of the written document.
	Bytes int

	// Digest is the hex SHA-256 of the written document.
	Digest string

	// Replaced is true when a file already existed at Path.
	Replaced bool
}

// SnapshotBuilder produces a snapshot from a directory tree.
type SnapshotBuilder interface {
	// Scan traverses cfg.Root and returns the snapshot of every qualifying file.
	Scan(cfg Config) (*Result, error)
}

// SnapshotWriter persists a snapshot.
type SnapshotWriter interface {
	// Persist writes snapshot as indented JSON to outputPath, replacing any existing file.
	Persist(snapshot *Snapshot, outputPath string) (PersistSummary, error)
}
