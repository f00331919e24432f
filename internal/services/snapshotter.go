package services

import (
	"fmt"

	"github.com/vvka-141/codesnap/internal/checksum"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

// SnapshotService runs one snapshot: scan, report, persist.
// Thread-Safety: safe for concurrent Run() calls only if the injected
// builder and writer are.
type SnapshotService struct {
	builder codesnap.SnapshotBuilder
	writer  codesnap.SnapshotWriter
	logger  codesnap.Logger
}

// NewSnapshotService creates a SnapshotService with all dependencies injected.
// Panics on nil dependencies; those are wiring mistakes, not runtime conditions.
func NewSnapshotService(
	builder codesnap.SnapshotBuilder,
	writer codesnap.SnapshotWriter,
	logger codesnap.Logger,
) *SnapshotService {
	if builder == nil {
		panic("builder cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &SnapshotService{
		builder: builder,
		writer:  writer,
		logger:  logger,
	}
}

// Run executes the top-level sequence and returns the scan result.
// Nothing is written when the scan fails.
func (s *SnapshotService) Run(cfg codesnap.Config) (*codesnap.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info("Scanning: %s", cfg.Root)
	s.logger.Verbose("Extensions: %v, decode: %s, on walk error: %s",
		cfg.Extensions.Sorted(), cfg.Decode, cfg.OnWalkError)

	result, err := s.builder.Scan(cfg)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Found %d files.", result.Snapshot.Len())
	s.reportProblems(result)

	summary, err := s.writer.Persist(result.Snapshot, cfg.Output)
	if err != nil {
		return result, err
	}

	if summary.Replaced {
		s.logger.Verbose("Replaced existing %s", cfg.Output)
	}
	s.logger.Info("Snapshot saved to: %s", cfg.Output)
	s.logger.Verbose("Wrote %d bytes, sha256 %s", summary.Bytes, checksum.Short(summary.Digest))
	return result, nil
}

func (s *SnapshotService) reportProblems(result *codesnap.Result) {
	if n := len(result.Skipped); n > 0 {
		s.logger.Warn("%s skipped", plural(n, "directory", "directories"))
		for _, dir := range result.Skipped {
			s.logger.Verbose("  skipped: %s", dir)
		}
	}
	if result.ReadErrors > 0 {
		s.logger.Warn("%s recorded with read errors", plural(result.ReadErrors, "file", "files"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
