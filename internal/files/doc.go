// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Directory traversal, extension filtering and snapshot building
//   - writer: Serialization of a snapshot to indented JSON on disk
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/codesnap/internal/files/scanner"
//	    "github.com/vvka-141/codesnap/internal/files/writer"
//	)
//
//	calc := checksum.New()
//	result, err := scanner.NewScanner(calc, logger).Scan(cfg)
//	if err != nil {
//	    return err
//	}
//	summary, err := writer.NewWriter(calc).Persist(result.Snapshot, cfg.Output)
//
// Both scanner and writer accept a filesystem.FileSystemProvider so tests can
// run against filesystem.NewMemoryFileSystem.
package files
