package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/codesnap/internal/checksum"
	"github.com/vvka-141/codesnap/internal/files/filesystem"
	"github.com/vvka-141/codesnap/internal/textcodec"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

// Scanner builds snapshots by walking a directory tree.
// A Scanner holds no per-run state; each Scan starts from an empty snapshot.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	logger     codesnap.Logger
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if calculator or logger is nil.
func NewScanner(calculator checksum.Calculator, logger codesnap.Logger) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, logger codesnap.Logger) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// BuildSnapshot scans root with the default decode and walk-error policies
// and returns the snapshot of every file whose extension is in extensions.
func (s *Scanner) BuildSnapshot(root string, extensions codesnap.ExtensionSet) (*codesnap.Snapshot, error) {
	cfg := codesnap.DefaultConfig()
	cfg.Root = root
	cfg.Output = ""
	cfg.Extensions = extensions

	result, err := s.Scan(cfg)
	if err != nil {
		return nil, err
	}
	return result.Snapshot, nil
}

// Scan traverses cfg.Root and returns one snapshot entry per qualifying file.
//
// A file that cannot be read or decoded gets a value starting with
// codesnap.ReadErrorPrefix and the walk continues. A directory that cannot be
// listed is handled per cfg.OnWalkError. If cfg.Output lies inside the root it
// is never part of the snapshot.
func (s *Scanner) Scan(cfg codesnap.Config) (*codesnap.Result, error) {
	if err := validateScanConfig(cfg); err != nil {
		return nil, err
	}

	dir, err := s.fsProvider.Open(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codesnap.ErrInvalidRoot, err)
	}

	excluded := s.excludedPath(cfg.Output)
	result := &codesnap.Result{Snapshot: codesnap.NewSnapshot()}

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			return s.handleWalkError(cfg.OnWalkError, walkErr, result)
		}

		if file.Info().IsDir() {
			return nil
		}

		relPath := file.RelativePath()
		if !cfg.Extensions.Matches(filepath.Base(relPath)) {
			return nil
		}

		key := normalizeKey(relPath)
		if excluded != "" && filepath.Clean(file.Path()) == excluded {
			s.logger.Verbose("Excluding output file %s", key)
			return nil
		}

		s.addFile(result, key, file, cfg.Decode)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Scanner) addFile(result *codesnap.Result, key string, file filesystem.File, policy codesnap.DecodePolicy) {
	raw, err := file.ReadContent()
	if err != nil {
		s.recordReadError(result, key, err)
		return
	}

	content, err := textcodec.Decode(raw, policy)
	if err != nil {
		s.recordReadError(result, key, err)
		return
	}

	result.Snapshot.Add(key, content)
	s.logger.Verbose("  %s (%d bytes, sha256 %s)", key, len(raw), checksum.Short(s.calculator.CalculateNormalized(raw)))
}

func (s *Scanner) recordReadError(result *codesnap.Result, key string, err error) {
	result.Snapshot.AddReadError(key, err)
	result.ReadErrors++
	s.logger.Warn("Could not read %s: %v", key, err)
}

func (s *Scanner) handleWalkError(policy codesnap.WalkErrorPolicy, walkErr error, result *codesnap.Result) error {
	relPath := "."
	cause := walkErr
	var we *filesystem.WalkError
	if errors.As(walkErr, &we) {
		relPath = normalizeKey(we.RelativePath)
		cause = we.Err
	}

	// The root itself cannot be skipped; an unreadable root fails the run.
	if relPath == "." {
		return fmt.Errorf("%w: %w", codesnap.ErrInvalidRoot, walkErr)
	}

	if policy == codesnap.WalkAbort {
		return fmt.Errorf("%w: %w", codesnap.ErrWalkFailed, walkErr)
	}

	s.logger.Warn("Skipping %s: %v", relPath, cause)
	result.Skipped = append(result.Skipped, relPath)
	return nil
}

// excludedPath returns the cleaned absolute output path, or "" when there is
// nothing to exclude.
func (s *Scanner) excludedPath(output string) string {
	if strings.TrimSpace(output) == "" {
		return ""
	}
	abs, err := s.fsProvider.Abs(output)
	if err != nil {
		return ""
	}
	return filepath.Clean(abs)
}

// normalizeKey converts a relative path into a snapshot key.
// Backslashes become forward slashes on every platform.
func normalizeKey(relPath string) string {
	return strings.ReplaceAll(filepath.ToSlash(relPath), `\`, "/")
}

func validateScanConfig(cfg codesnap.Config) error {
	if strings.TrimSpace(cfg.Root) == "" {
		return fmt.Errorf("%w: scan root is required", codesnap.ErrInvalidConfig)
	}
	if len(cfg.Extensions) == 0 {
		return fmt.Errorf("%w: at least one extension is required", codesnap.ErrInvalidConfig)
	}
	if _, err := codesnap.ParseDecodePolicy(string(cfg.Decode)); err != nil {
		return err
	}
	if _, err := codesnap.ParseWalkErrorPolicy(string(cfg.OnWalkError)); err != nil {
		return err
	}
	return nil
}

// Verify Scanner implements the interface at compile time
var _ codesnap.SnapshotBuilder = (*Scanner)(nil)
