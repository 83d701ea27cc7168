package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and --plain.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss output without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode inspects stdin and stdout.
func DetectOutputMode(plain bool) OutputMode {
	return detectOutputMode(plain,
		term.IsTerminal(int(os.Stdout.Fd())),
		term.IsTerminal(int(os.Stdin.Fd())),
		os.Getenv("NO_COLOR") != "",
	)
}

func detectOutputMode(plain, stdoutTTY, stdinTTY, noColor bool) OutputMode {
	switch {
	case plain || !stdoutTTY || noColor:
		return OutputModePlain
	case !stdinTTY:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// TerminalWidth returns the width of stdout, or defaultWidth when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
