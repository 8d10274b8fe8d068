package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours everything except the bodies, which keep their own colour
// unless the theme is monochrome.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Trail      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Monochrome bool
}

var (
	ThemeDeepSpace = Theme{
		Name:    "deep",
		Primary: lipgloss.Color("#00ccff"),
		Trail:   lipgloss.Color("#334466"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"),
		Trail:      lipgloss.Color("#005500"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Monochrome: true,
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Trail:      lipgloss.Color("#888888"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Monochrome: true,
	}

	Themes = []Theme{
		ThemeDeepSpace,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the first.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
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

func nextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
