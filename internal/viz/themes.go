package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the terminal viewer. Cells draws the lattice; Accent marks
// values that change every frame.
type Theme struct {
	Name    string
	Cells   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Warning lipgloss.Color
	// Background is only used for exported images.
	Background string
}

var (
	ThemeMinimal = Theme{
		Name:       "minimal",
		Cells:      lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#444444"),
		Warning:    lipgloss.Color("#ffaa00"),
		Background: "#000000",
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Cells:      lipgloss.Color("#00ff00"), // green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Border:     lipgloss.Color("#003300"),
		Warning:    lipgloss.Color("#ffff00"),
		Background: "#001100",
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Cells:      lipgloss.Color("#ff00ff"),
		Accent:     lipgloss.Color("#00ffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Border:     lipgloss.Color("#444466"),
		Warning:    lipgloss.Color("#ff8800"),
		Background: "#0a0a0a",
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Cells:      lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Border:     lipgloss.Color("#0077be"),
		Warning:    lipgloss.Color("#ffcc00"),
		Background: "#001a33",
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Cells:      lipgloss.Color("#ff6b6b"),
		Accent:     lipgloss.Color("#feca57"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Border:     lipgloss.Color("#5a3b5c"),
		Warning:    lipgloss.Color("#ffc048"),
		Background: "#2d1b2e",
	}

	Themes = []Theme{ThemeMinimal, ThemeRetro, ThemeCyberpunk, ThemeOcean, ThemeSunset}
)

// GetTheme returns the named theme, or the first one for unknown names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
