package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPrompt renders the open-channel handle prompt.
func (m Model) renderPrompt() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Open channel"))
	b.WriteString("\n\n")
	b.WriteString(m.promptInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter opens · esc cancels"))
	return m.centered(m.styles.ModalBox.Render(b.String()))
}

// renderCreateModal renders the create-playlist form.
func (m Model) renderCreateModal() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create New Playlist"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n")
	if m.fieldErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Danger.Render(m.fieldErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab switches fields · enter creates · esc cancels"))
	return m.centered(m.styles.ModalBox.Render(b.String()))
}

// renderHelp renders the key binding overlay.
func (m Model) renderHelp() string {
	rows := []struct{ keys, what string }{
		{"f", "home feed"},
		{"c or /", "open channel by handle"},
		{"v / p / tab", "switch videos and playlists"},
		{"s", "subscribe or unsubscribe"},
		{"n", "new playlist (own channel)"},
		{"r", "refresh channel"},
		{"j/k", "move selection"},
		{"esc", "dismiss / back to feed"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("vidterm keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.styles.Accent.Render(padRight(row.keys, 12)))
		b.WriteString(m.styles.Muted.Render(row.what))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return m.centered(m.styles.ModalBox.Render(b.String()))
}

func (m Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
