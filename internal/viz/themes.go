package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Theme defines the color scheme for the TUI and exported charts.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
	Bars   map[sorting.Tag]lipgloss.Color
}

// Available themes
var (
	// ThemeClassic mirrors the matplotlib colors learners know from textbooks.
	ThemeClassic = Theme{
		Name:   "classic",
		Title:  lipgloss.Color("#00cccc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Error:  lipgloss.Color("#ff4444"),
		Bars: map[sorting.Tag]lipgloss.Color{
			sorting.Default:   "#1f77ff",
			sorting.Swapped:   "#ff0000",
			sorting.InOrder:   "#008000",
			sorting.Settled:   "#ffff00",
			sorting.Inserted:  "#ffc0cb",
			sorting.Pending:   "#3a3a3a",
			sorting.Selected:  "#800080",
			sorting.Finalized: "#00ffff",
			sorting.Merged:    "#ffd700",
			sorting.Sorted:    "#00c000",
		},
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#ff00ff"),
		Accent: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Error:  lipgloss.Color("#ff0000"),
		Bars: map[sorting.Tag]lipgloss.Color{
			sorting.Default:   "#00ffff",
			sorting.Swapped:   "#ff0055",
			sorting.InOrder:   "#00ff88",
			sorting.Settled:   "#ffff00",
			sorting.Inserted:  "#ff00ff",
			sorting.Pending:   "#333344",
			sorting.Selected:  "#aa00ff",
			sorting.Finalized: "#00aaff",
			sorting.Merged:    "#ff8800",
			sorting.Sorted:    "#00ff00",
		},
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ffff00"),
		Bars: map[sorting.Tag]lipgloss.Color{
			sorting.Default:   "#00aa00",
			sorting.Swapped:   "#ccff00",
			sorting.InOrder:   "#00cc00",
			sorting.Settled:   "#aaffaa",
			sorting.Inserted:  "#66ff66",
			sorting.Pending:   "#003300",
			sorting.Selected:  "#ccff00",
			sorting.Finalized: "#88ff88",
			sorting.Merged:    "#66ff66",
			sorting.Sorted:    "#ffffff",
		},
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Error:  lipgloss.Color("#ff4444"),
		Bars: map[sorting.Tag]lipgloss.Color{
			sorting.Default:   "#0077be",
			sorting.Swapped:   "#ff6b6b",
			sorting.InOrder:   "#00ff88",
			sorting.Settled:   "#ffd700",
			sorting.Inserted:  "#7fdbff",
			sorting.Pending:   "#12324a",
			sorting.Selected:  "#b388ff",
			sorting.Finalized: "#00e5ff",
			sorting.Merged:    "#ffcc00",
			sorting.Sorted:    "#00ff88",
		},
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"), // Coral
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Error:  lipgloss.Color("#ff4757"),
		Bars: map[sorting.Tag]lipgloss.Color{
			sorting.Default:   "#ff9ff3",
			sorting.Swapped:   "#ff4757",
			sorting.InOrder:   "#5fd068",
			sorting.Settled:   "#feca57",
			sorting.Inserted:  "#ff9f43",
			sorting.Pending:   "#4b3a4c",
			sorting.Selected:  "#c56cf0",
			sorting.Finalized: "#48dbfb",
			sorting.Merged:    "#ffc048",
			sorting.Sorted:    "#5fd068",
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// TagColor is the bar color for tag, or Text when the theme has none.
func (t Theme) TagColor(tag sorting.Tag) lipgloss.Color {
	if c, ok := t.Bars[tag]; ok {
		return c
	}
	return t.Text
}

// Hex satisfies export.Palette.
func (t Theme) Hex(tag sorting.Tag) string { return string(t.TagColor(tag)) }
