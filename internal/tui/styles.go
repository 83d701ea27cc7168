package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/slayerdex/internal/config"
)

const borderPadding = 4

// Palette-independent chrome.
var (
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Styles is the lipgloss rendering of one palette.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Card        lipgloss.Style
	Name        lipgloss.Style
	Chip        lipgloss.Style
	ChipLabel   lipgloss.Style
	ChipValue   lipgloss.Style
	ChipAccent  lipgloss.Style
	Description lipgloss.Style
	Quote       lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Spinner     lipgloss.Color
}

// NewStyles builds the styles for p.
func NewStyles(p config.Palette) Styles {
	primary := lipgloss.Color(p.Primary)
	surface := lipgloss.Color(p.Surface)
	text := lipgloss.Color(p.Text)
	chipBg := lipgloss.Color(p.ChipBackground)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Background(surface).
			Foreground(text).
			Padding(1, 2),
		Name:        lipgloss.NewStyle().Bold(true).Foreground(primary).Background(surface),
		Chip:        lipgloss.NewStyle().Background(chipBg).Padding(0, 1),
		ChipLabel:   lipgloss.NewStyle().Background(chipBg).Foreground(lipgloss.Color(p.ChipLabel)),
		ChipValue:   lipgloss.NewStyle().Background(chipBg).Foreground(lipgloss.Color(p.ChipValue)).Bold(true),
		ChipAccent:  lipgloss.NewStyle().Background(chipBg).Foreground(primary).Bold(true),
		Description: lipgloss.NewStyle().Foreground(text).Background(surface),
		Quote: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(p.QuoteBackground)).
			Padding(0, 1),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		RowSelected: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Spinner:     primary,
	}
}
