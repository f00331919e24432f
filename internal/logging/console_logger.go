// Package logging provides concrete implementations of the codesnap.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/codesnap/internal/tui"
)

// ConsoleLogger writes informational messages to stdout and diagnostics to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	styled  bool
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger on the process's stdout and stderr.
// If verbose is true, Verbose() calls will produce output.
// Output is styled when running in an interactive terminal.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	l := NewConsoleLoggerWithWriters(os.Stdout, os.Stderr, verbose)
	l.styled = tui.IsInteractive()
	return l
}

// NewConsoleLoggerWithWriters creates an unstyled ConsoleLogger on the given writers.
func NewConsoleLoggerWithWriters(out, errOut io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.errOut, "[VERBOSE] ", format, args, tui.MutedStyle.Render)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, "", format, args, nil)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.errOut, "[WARN] ", format, args, tui.WarningStyle.Render)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, "[ERROR] ", format, args, tui.ErrorStyle.Render)
}

func (l *ConsoleLogger) write(w io.Writer, prefix, format string, args []interface{}, render func(...string) string) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	line := prefix + msg
	if l.styled && render != nil {
		line = render(line)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, line)
}
