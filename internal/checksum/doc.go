// Package checksum provides content hashing for snapshot files and documents.
//
//   - Raw checksum: hash of the exact bytes (detects all changes)
//   - Normalized checksum: hash after line-ending normalization, so the same
//     tree checked out with different autocrlf settings hashes identically
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(document)
//	normalized := calculator.CalculateNormalized(document)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
