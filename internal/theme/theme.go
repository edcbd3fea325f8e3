package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Theme defines the colours used by the rain and the bio overlay
type Theme struct {
	Name    string
	Head    lipgloss.Color
	Trail   lipgloss.Color
	Palette []lipgloss.Color // overlay colour cycle, in order
}

// Available themes
var (
	ThemeMatrix = Theme{
		Name:  "matrix",
		Head:  lipgloss.Color("#ccffcc"), // near-white green
		Trail: lipgloss.Color("#00aa00"),
		Palette: []lipgloss.Color{
			"#ff0000", // red
			"#00ff00", // green
			"#ffff00", // yellow
			"#0000ff", // blue
			"#ff00ff", // magenta
			"#00ffff", // cyan
			"#ffffff", // white
		},
	}

	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Head:  lipgloss.Color("#ffffff"),
		Trail: lipgloss.Color("#ff00ff"),
		Palette: []lipgloss.Color{
			"#ff00ff",
			"#00ffff",
			"#ffff00",
		},
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Head:  lipgloss.Color("#88ff88"), // green phosphor
		Trail: lipgloss.Color("#005500"),
		Palette: []lipgloss.Color{
			"#00ff00",
			"#00cc00",
			"#88ff88",
		},
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Head:  lipgloss.Color("#e0f0ff"),
		Trail: lipgloss.Color("#0077be"),
		Palette: []lipgloss.Color{
			"#00a8cc",
			"#ffd700",
			"#00ff88",
			"#e0f0ff",
		},
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Head:  lipgloss.Color("#fff5f5"),
		Trail: lipgloss.Color("#ff6b6b"),
		Palette: []lipgloss.Color{
			"#ff6b6b",
			"#feca57",
			"#ff9ff3",
			"#5fd068",
		},
	}

	Default = ThemeMatrix

	// All available themes
	Themes = []Theme{
		ThemeMatrix,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// Get returns a theme by name and whether it exists. Unknown names fall back
// to the default theme.
func Get(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Default, false
}

// Names returns list of available theme names
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color converts a lipgloss hex colour into a tcell colour.
func Color(c lipgloss.Color) tcell.Color {
	return tcell.GetColor(string(c))
}

func (t Theme) HeadStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(Color(t.Head)).Bold(true)
}

func (t Theme) TrailStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(Color(t.Trail))
}

// Colors returns the overlay palette as tcell colours.
func (t Theme) Colors() []tcell.Color {
	out := make([]tcell.Color, len(t.Palette))
	for i, c := range t.Palette {
		out[i] = Color(c)
	}
	return out
}
