package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/config"
)

func TestAssets_Backdrop(t *testing.T) {
	themes := config.DefaultThemeConfig()
	assets := NewAssets(themes)

	tests := []struct {
		name  string
		theme character.Theme
		want  character.Theme
		color string
	}{
		{name: "human", theme: character.ThemeHuman, want: character.ThemeHuman, color: themes.Human.Backdrop},
		{name: "demon", theme: character.ThemeDemon, want: character.ThemeDemon, color: themes.Demon.Backdrop},
		{name: "unknown falls back", theme: "oni", want: character.ThemeHuman, color: themes.Human.Backdrop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := assets.Backdrop(tt.theme)
			assert.Equal(t, tt.want, b.Theme)
			assert.Equal(t, lipgloss.Color(tt.color), b.Color)
			assert.NotEmpty(t, b.Motif)
		})
	}

	motifs := make(map[string]character.Theme)
	for _, theme := range character.Themes() {
		b := assets.Backdrop(theme)
		assert.Equal(t, theme, b.Theme)
		motifs[b.Motif] = theme
	}
	assert.Len(t, motifs, 2, "each theme has its own motif")
}

func TestBackdrop_Render(t *testing.T) {
	b := NewAssets(config.DefaultThemeConfig()).Backdrop(character.ThemeDemon)

	out := b.Render(20, 5, "card")
	assert.Contains(t, out, "card")
	assert.Contains(t, out, "✶")
	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Equal(t, 20, lipgloss.Width(out))

	small := b.Render(2, 1, "wide content")
	assert.Contains(t, small, "wide content")
}

func TestNewStyles_UsesPalette(t *testing.T) {
	themes := config.DefaultThemeConfig()

	human := NewStyles(themes.Human)
	demon := NewStyles(themes.Demon)

	assert.Equal(t, lipgloss.Color(themes.Human.Primary), human.Spinner)
	assert.Equal(t, lipgloss.Color(themes.Demon.Primary), demon.Spinner)
}
