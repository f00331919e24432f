package writer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vvka-141/codesnap/internal/checksum"
	"github.com/vvka-141/codesnap/internal/files/filesystem"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

// Writer writes snapshot documents through a filesystem provider.
type Writer struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewWriter creates a writer over the OS filesystem.
// Panics if calculator is nil.
func NewWriter(calculator checksum.Calculator) *Writer {
	return NewWriterWithFS(calculator, filesystem.NewOSFileSystem())
}

// NewWriterWithFS creates a writer with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewWriterWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Writer {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Writer{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// Encode renders snapshot as a JSON object indented by codesnap.OutputIndent.
// Non-ASCII and HTML-significant characters are written verbatim.
// The document has no trailing newline.
func Encode(snapshot *codesnap.Snapshot) ([]byte, error) {
	if snapshot == nil {
		snapshot = codesnap.NewSnapshot()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", codesnap.OutputIndent)
	if err := enc.Encode(snapshot); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Persist encodes snapshot and writes it to outputPath in one call,
// replacing an existing file. Failures wrap codesnap.ErrWriteFailed.
func (w *Writer) Persist(snapshot *codesnap.Snapshot, outputPath string) (codesnap.PersistSummary, error) {
	data, err := Encode(snapshot)
	if err != nil {
		return codesnap.PersistSummary{}, fmt.Errorf("%w: encode: %w", codesnap.ErrWriteFailed, err)
	}

	replaced := false
	if info, err := w.fsProvider.Stat(outputPath); err == nil {
		if info.IsDir() {
			return codesnap.PersistSummary{}, fmt.Errorf("%w: %s is a directory", codesnap.ErrWriteFailed, outputPath)
		}
		replaced = true
	}

	if err := w.fsProvider.WriteFile(outputPath, data, codesnap.OutputFileMode); err != nil {
		return codesnap.PersistSummary{}, fmt.Errorf("%w: %w", codesnap.ErrWriteFailed, err)
	}

	return codesnap.PersistSummary{
		Path:     outputPath,
		Bytes:    len(data),
		Digest:   w.calculator.CalculateRaw(data),
		Replaced: replaced,
	}, nil
}

// Verify Writer implements the interface at compile time
var _ codesnap.SnapshotWriter = (*Writer)(nil)
