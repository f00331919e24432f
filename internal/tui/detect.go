package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how console output is rendered.
type Mode int

const (
	// ModePlain is used for pipes, redirected output, CI and NO_COLOR.
	ModePlain Mode = iota
	// ModeInteractive is used when a human is watching the terminal.
	ModeInteractive
)

// DetectMode determines whether codesnap output may be styled.
//
// Returns ModePlain if:
//   - CODESNAP_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout is not a terminal (redirected or piped)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("CODESNAP_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
