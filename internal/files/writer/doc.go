// Package writer persists snapshots as JSON documents.
//
// The writer package is responsible for:
//   - Encoding a snapshot as an indented JSON object in entry order
//   - Writing the whole document in a single call, replacing any existing file
//   - Reporting the written size and SHA-256 digest of the document
//
// No atomic rename is performed; a failure mid-write can leave a partial file.
package writer
