package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum after converting CRLF and lone CR
	// line endings to LF, so a tree checked out on Windows and on Unix hashes
	// the same.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of content with normalized line endings.
func (c SHA256) CalculateNormalized(content []byte) string {
	h := sha256.New()
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\r' {
			continue
		}
		h.Write(content[start:i])
		h.Write([]byte{'\n'})
		if i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	h.Write(content[start:])
	return hex.EncodeToString(h.Sum(nil))
}

// Short returns the first 12 hex digits of a checksum for log output.
func Short(sum string) string {
	if len(sum) <= 12 {
		return sum
	}
	return sum[:12]
}
