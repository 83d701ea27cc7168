package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rshade/slayerdex/internal/character"
)

// User-visible indicators of the settled loader states.
const (
	EmptyListingMessage = "No characters available."
	NotFoundMessage     = "Character not found."
)

const (
	nameColumnWidth = 28
	idColumnWidth   = 6
	ellipsis        = "…"
)

// truncate shortens s to at most width display cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// pad truncates s and fills it to exactly width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// RenderSummaryTable renders items as an ID NAME IMAGE table. A width of zero
// leaves the image column untruncated.
func RenderSummaryTable(items []character.Summary, width int) string {
	var b strings.Builder
	imgWidth := 0
	if width > 0 {
		imgWidth = max(width-idColumnWidth-nameColumnWidth-2, len(ellipsis))
	}
	cell := func(s string) string {
		if imgWidth == 0 {
			return s
		}
		return truncate(s, imgWidth)
	}

	fmt.Fprintf(&b, "%s %s %s\n", pad("ID", idColumnWidth), pad("NAME", nameColumnWidth), "IMAGE")
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s %s\n",
			pad(item.ID.String(), idColumnWidth),
			pad(item.Name, nameColumnWidth),
			cell(item.Img))
	}
	return b.String()
}

// RenderDetailPlain renders d as unstyled text.
func RenderDetailPlain(d character.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (id %s)\n", d.Name, d.ID)
	fmt.Fprintf(&b, "Age: %s\n", d.Age)
	fmt.Fprintf(&b, "Race: %s\n", d.Race)
	fmt.Fprintf(&b, "Gender: %s\n", d.Gender)
	if d.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Description)
	}
	if d.Quote != "" {
		fmt.Fprintf(&b, "\n%q\n", d.Quote)
	}
	if d.Img != "" {
		fmt.Fprintf(&b, "\nImage: %s\n", d.Img)
	}
	return b.String()
}

func renderChip(s Styles, label, value string, accent bool) string {
	valueStyle := s.ChipValue
	if accent {
		valueStyle = s.ChipAccent
	}
	return s.Chip.Render(s.ChipLabel.Render(label+" ") + valueStyle.Render(value))
}

// RenderDetailCard renders d as a card of the given outer width.
func RenderDetailCard(d character.Detail, s Styles, width int) string {
	inner := max(width-borderPadding-2, 20) //nolint:mnd // Minimum readable card.

	chips := lipgloss.JoinHorizontal(lipgloss.Top,
		renderChip(s, "Age", d.Age, false), " ",
		renderChip(s, "Race", d.Race, true), " ",
		renderChip(s, "Gender", d.Gender, false),
	)

	sections := []string{s.Name.Render(d.Name), "", chips}
	if d.Description != "" {
		sections = append(sections, "", s.Description.Width(inner).Render(d.Description))
	}
	if d.Quote != "" {
		sections = append(sections, "", s.Quote.Width(inner).Render("“"+d.Quote+"”"))
	}
	return s.Card.Width(inner + borderPadding).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
