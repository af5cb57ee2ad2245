package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the histogram view. Original is used for the
// untransformed bars and Transformed once columns start to morph.
type Theme struct {
	Name        string
	Original    lipgloss.Color
	Transformed lipgloss.Color
	Accent      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Original:    lipgloss.Color("#00ffff"),
		Transformed: lipgloss.Color("#ff00ff"),
		Accent:      lipgloss.Color("#ffff00"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
		Success:     lipgloss.Color("#00ff00"),
		Warning:     lipgloss.Color("#ff8800"),
		Error:       lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Original:    lipgloss.Color("#00cc00"),
		Transformed: lipgloss.Color("#88ff88"),
		Accent:      lipgloss.Color("#ffff00"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Success:     lipgloss.Color("#88ff88"),
		Warning:     lipgloss.Color("#ffff00"),
		Error:       lipgloss.Color("#ff0000"),
	}

	// Blue original bars, purple transformed bars.
	ThemeClassic = Theme{
		Name:        "classic",
		Original:    lipgloss.Color("#0000ff"),
		Transformed: lipgloss.Color("#800080"),
		Accent:      lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#dddddd"),
		Muted:       lipgloss.Color("#888888"),
		Success:     lipgloss.Color("#00ff00"),
		Warning:     lipgloss.Color("#ffaa00"),
		Error:       lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:        "minimal",
		Original:    lipgloss.Color("#cccccc"),
		Transformed: lipgloss.Color("#0088ff"),
		Accent:      lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
		Success:     lipgloss.Color("#00ff00"),
		Warning:     lipgloss.Color("#ffaa00"),
		Error:       lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Original:    lipgloss.Color("#00a8cc"),
		Transformed: lipgloss.Color("#0077be"),
		Accent:      lipgloss.Color("#ffd700"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Success:     lipgloss.Color("#00ff88"),
		Warning:     lipgloss.Color("#ffcc00"),
		Error:       lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Original:    lipgloss.Color("#feca57"),
		Transformed: lipgloss.Color("#ff6b6b"),
		Accent:      lipgloss.Color("#ff9ff3"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Success:     lipgloss.Color("#5fd068"),
		Warning:     lipgloss.Color("#ffc048"),
		Error:       lipgloss.Color("#ff4757"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeClassic,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
