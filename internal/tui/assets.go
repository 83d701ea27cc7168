package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/config"
)

// Backdrop is the background a detail card is placed on.
type Backdrop struct {
	Theme character.Theme
	Motif string
	Color lipgloss.Color
}

// Render centres content on a width x height field of the backdrop motif.
func (b Backdrop) Render(width, height int, content string) string {
	width = max(width, lipgloss.Width(content))
	height = max(height, lipgloss.Height(content))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceChars(b.Motif),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
		lipgloss.WithWhitespaceBackground(b.Color),
	)
}

var motifs = map[character.Theme]string{
	character.ThemeHuman: "≈ ",
	character.ThemeDemon: "✶ ",
}

// Assets resolves a theme to its styles and backdrop.
type Assets struct {
	themes config.ThemeConfig
}

// NewAssets creates a provider over the configured palettes.
func NewAssets(themes config.ThemeConfig) *Assets {
	return &Assets{themes: themes}
}

// Styles returns the styles of theme.
func (a *Assets) Styles(theme character.Theme) Styles {
	return NewStyles(a.themes.Palette(theme))
}

// Backdrop returns the background resource of theme. Unknown themes get the
// human backdrop.
func (a *Assets) Backdrop(theme character.Theme) Backdrop {
	if theme != character.ThemeDemon {
		theme = character.ThemeHuman
	}
	return Backdrop{
		Theme: theme,
		Motif: motifs[theme],
		Color: lipgloss.Color(a.themes.Palette(theme).Backdrop),
	}
}
