package viz

import "github.com/lucasb-eyer/go-colorful"

// Theme colours the parts of the scene that do not carry their own emission.
// Horizon is the rim drawn around the event horizon's shadow.
type Theme struct {
	Name    string
	Grid    colorful.Color
	Star    colorful.Color
	Horizon colorful.Color
	Title   [2]colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	ThemeVoid = Theme{
		Name:    "void",
		Grid:    mustHex("#4d4d4d"),
		Star:    mustHex("#ffffff"),
		Horizon: mustHex("#3a3a4a"),
		Title:   [2]colorful.Color{mustHex("#ffae42"), mustHex("#9bb0ff")},
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Grid:    mustHex("#005500"),
		Star:    mustHex("#88ff88"),
		Horizon: mustHex("#003300"),
		Title:   [2]colorful.Color{mustHex("#00ff00"), mustHex("#88ff88")},
	}

	ThemeInfrared = Theme{
		Name:    "infrared",
		Grid:    mustHex("#5a1f1f"),
		Star:    mustHex("#ffd0b0"),
		Horizon: mustHex("#4a1010"),
		Title:   [2]colorful.Color{mustHex("#ff4500"), mustHex("#ffd700")},
	}

	CurrentTheme = ThemeVoid

	Themes = []Theme{ThemeVoid, ThemeRetroGreen, ThemeInfrared}
)

// SetTheme selects a theme by name and reports whether it exists.
func SetTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			CurrentTheme = t
			return true
		}
	}
	return false
}

// NextTheme cycles CurrentTheme through Themes.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
