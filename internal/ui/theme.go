package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the dashboard palette.
type Theme struct {
	Border  string
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// defaultTheme follows the Dracula palette.
var defaultTheme = Theme{
	Border:  "#44475a",
	Text:    "#f8f8f2",
	Muted:   "#6272a4",
	Accent:  "#bd93f9",
	Success: "#50fa7b",
	Warning: "#f1fa8c",
	Danger:  "#ff5555",
}

// Styles holds the rendered lipgloss styles for a Theme.
type Styles struct {
	Panel   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Key     lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(labelWidth),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
	}
}

const labelWidth = 13
