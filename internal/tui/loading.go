package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultLoadingMessage = "Loading..."

// LoadingState wraps the spinner shown while a loader is outstanding.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a spinner with message, coloured with color.
func NewLoadingState(message string, color lipgloss.Color) *LoadingState {
	if message == "" {
		message = defaultLoadingMessage
	}
	return &LoadingState{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(color)),
		),
		message: message,
	}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner. Ticks that belong to other spinners are ignored.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading returns the spinner line. A nil state renders plain text.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return defaultLoadingMessage
	}
	return fmt.Sprintf("\n %s %s\n\n", loading.spinner.View(), loading.message)
}
