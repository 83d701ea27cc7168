package character

// Theme names one of the two visual treatments of the detail screen.
type Theme string

const (
	// ThemeDemon is used for characters whose race is exactly RaceDemon.
	ThemeDemon Theme = "demon"
	// ThemeHuman is used for every other race, including unknown ones.
	ThemeHuman Theme = "human"
)

// RaceDemon is the race value that selects ThemeDemon.
const RaceDemon = "Demon"

// SelectTheme maps a race to its theme. The comparison is exact and
// case-sensitive: "demon" and "DEMON" select ThemeHuman.
func SelectTheme(race string) Theme {
	if race == RaceDemon {
		return ThemeDemon
	}
	return ThemeHuman
}

// Themes returns both themes in display order.
func Themes() []Theme {
	return []Theme{ThemeHuman, ThemeDemon}
}
