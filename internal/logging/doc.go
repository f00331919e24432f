// Package logging provides concrete implementations of the codesnap.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Info lines to stdout; [VERBOSE], [WARN] and [ERROR] lines
//     to stderr, styled with lipgloss in interactive terminals
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
