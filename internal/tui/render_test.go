package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/slayerdex/internal/character"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tanjiro", "tanjiro"},
		{"Kyōjurō", "kyojuro"},
		{"KOCHŌ", "kocho"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fold(tt.in))
		})
	}
}

func TestFilterSummaries(t *testing.T) {
	items := []character.Summary{tanjiro.Summary, nezuko.Summary, rengoku.Summary}

	assert.Equal(t, items, filterSummaries(items, ""))
	assert.Equal(t, items, filterSummaries(items, "   "))
	assert.Equal(t, []character.Summary{tanjiro.Summary, nezuko.Summary}, filterSummaries(items, "kamado"))
	assert.Equal(t, []character.Summary{rengoku.Summary}, filterSummaries(items, "kyojuro"))
	assert.Empty(t, filterSummaries(items, "muzan"))
}

func TestRenderSummaryTable(t *testing.T) {
	items := []character.Summary{
		tanjiro.Summary,
		{ID: "42", Name: strings.Repeat("Long Name ", 5), Img: "u"},
	}

	out := RenderSummaryTable(items, 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "IMAGE")
	assert.Contains(t, lines[1], "Tanjiro Kamado")
	assert.Contains(t, lines[1], tanjiro.Img)
	assert.Contains(t, lines[2], ellipsis, "long names are truncated")
}

func TestRenderSummaryTable_TruncatesImages(t *testing.T) {
	out := RenderSummaryTable([]character.Summary{tanjiro.Summary}, 50)

	assert.NotContains(t, out, tanjiro.Img)
	assert.Contains(t, out, ellipsis)
}

func TestRenderSummaryTable_Empty(t *testing.T) {
	out := RenderSummaryTable(nil, 0)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRenderDetailPlain(t *testing.T) {
	out := RenderDetailPlain(tanjiro)

	assert.Contains(t, out, "Tanjiro Kamado (id 1)")
	assert.Contains(t, out, "Age: 15")
	assert.Contains(t, out, "Race: Human")
	assert.Contains(t, out, "Gender: Male")
	assert.Contains(t, out, tanjiro.Description)
	assert.Contains(t, out, `"Set your heart ablaze."`)
	assert.Contains(t, out, "Image: "+tanjiro.Img)
}

func TestRenderDetailCard(t *testing.T) {
	styles := testAssets().Styles(character.ThemeDemon)
	out := RenderDetailCard(nezuko, styles, 60)

	assert.Contains(t, out, "Nezuko Kamado")
	assert.Contains(t, out, "Race")
	assert.Contains(t, out, "Demon")
	assert.Contains(t, out, "Mmm!")
	assert.LessOrEqual(t, lipgloss.Width(out), 60)
}

func TestRenderDetailCard_OmitsEmptySections(t *testing.T) {
	out := RenderDetailCard(rengoku, testAssets().Styles(character.ThemeHuman), 60)

	assert.Contains(t, out, "Kyōjurō Rengoku")
	assert.NotContains(t, out, "“")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "abc  ", pad("abc", 5))
}
