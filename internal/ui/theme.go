package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the Lipgloss styles used across the views.
type Styles struct {
	Title      lipgloss.Style
	Handle     lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Danger     lipgloss.Style
	Success    lipgloss.Style
	Notice     lipgloss.Style
	TabActive  lipgloss.Style
	TabHidden  lipgloss.Style
	Selected   lipgloss.Style
	Subscribe  lipgloss.Style
	Subscribed lipgloss.Style
	ModalBox   lipgloss.Style
	FieldLabel lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Underline(true),
		TabHidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")),
		Subscribe: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("161")).
			Padding(0, 1),
		Subscribed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		FieldLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")),
	}
}
