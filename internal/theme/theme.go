package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the reader
type Theme struct {
	Key  string
	Name string

	// Text colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Highlight lipgloss.Color
}

var (
	Saffron = Theme{
		Key:       "saffron",
		Name:      "Saffron",
		Primary:   lipgloss.Color("#3b2a1a"),
		Secondary: lipgloss.Color("#8a5a2b"),
		Accent:    lipgloss.Color("#e07b00"),
		Muted:     lipgloss.Color("#a08c78"),
		Error:     lipgloss.Color("#c0392b"),
		Border:    lipgloss.Color("#f0c27b"),
		Highlight: lipgloss.Color("#fbe3c0"),
	}

	Midnight = Theme{
		Key:       "midnight",
		Name:      "Midnight",
		Primary:   lipgloss.Color("#e6e1f0"),
		Secondary: lipgloss.Color("#a59fc2"),
		Accent:    lipgloss.Color("#f4b860"),
		Muted:     lipgloss.Color("#6b6585"),
		Error:     lipgloss.Color("#ef6f8a"),
		Border:    lipgloss.Color("#3a3554"),
		Highlight: lipgloss.Color("#2c2842"),
	}

	Parchment = Theme{
		Key:       "parchment",
		Name:      "Parchment",
		Primary:   lipgloss.Color("#4a3f35"),
		Secondary: lipgloss.Color("#7d6b5a"),
		Accent:    lipgloss.Color("#9c4221"),
		Muted:     lipgloss.Color("#b3a48f"),
		Error:     lipgloss.Color("#a61b1b"),
		Border:    lipgloss.Color("#e4d7bf"),
		Highlight: lipgloss.Color("#efe6d2"),
	}

	Forest = Theme{
		Key:       "forest",
		Name:      "Forest",
		Primary:   lipgloss.Color("#dfe8d6"),
		Secondary: lipgloss.Color("#9fb596"),
		Accent:    lipgloss.Color("#e9c46a"),
		Muted:     lipgloss.Color("#5f7359"),
		Error:     lipgloss.Color("#e76f51"),
		Border:    lipgloss.Color("#344e41"),
		Highlight: lipgloss.Color("#2b3d33"),
	}
)

// AllThemes returns the themes in the order Settings cycles through them
func AllThemes() []Theme {
	return []Theme{Saffron, Midnight, Parchment, Forest}
}

// Get returns a theme by key, defaulting to Saffron if not found
func Get(key string) Theme {
	for _, t := range AllThemes() {
		if t.Key == key {
			return t
		}
	}
	return Saffron
}

// Next returns the theme after key, wrapping around. Unknown keys step from
// the theme Get resolves them to.
func Next(key string) Theme {
	current := Get(key)
	all := AllThemes()
	for i, t := range all {
		if t.Key == current.Key {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Styles are the lipgloss styles the screens render with.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Section  lipgloss.Style
	Card     lipgloss.Style
	Text     lipgloss.Style
	Italic   lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Section: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Text:     lipgloss.NewStyle().Foreground(t.Primary),
		Italic:   lipgloss.NewStyle().Italic(true).Foreground(t.Secondary),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Accent:   lipgloss.NewStyle().Foreground(t.Accent),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Background(t.Highlight),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Help:     lipgloss.NewStyle().Foreground(t.Muted),
	}
}
