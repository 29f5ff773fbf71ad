package ui

import (
	"fmt"
	"strings"
)

// renderFeed renders the home feed: the latest uploads across the platform.
func (m Model) renderFeed() string {
	var b strings.Builder

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")

	switch {
	case m.snapshot.IsOffline():
		b.WriteString(m.styles.Danger.Render("Server unreachable"))
		b.WriteString("\n")
		if err := m.snapshot.LastError; err != nil {
			b.WriteString(m.styles.Muted.Render(err.Error()))
			b.WriteString("\n")
		}
		if len(m.snapshot.Videos) > 0 {
			b.WriteString(m.styles.Muted.Render("Showing the last loaded feed."))
			b.WriteString("\n\n")
		} else {
			return b.String()
		}
	case !m.snapshot.Loaded:
		b.WriteString(m.styles.Muted.Render("Loading feed..."))
		return b.String()
	case len(m.snapshot.Videos) == 0:
		b.WriteString(m.styles.Muted.Render("Nothing has been uploaded yet."))
		return b.String()
	}

	for i, v := range m.snapshot.Videos {
		line := fmt.Sprintf("%s  [%s]  %s views · %s",
			v.Title, formatDuration(v.Duration), formatCount(v.Views), formatTimeAgo(v.ParsedCreatedAt()))
		if i == m.selectedRow {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine renders the one-line header shared by all views.
func (m Model) renderStatusLine() string {
	var parts []string
	parts = append(parts, m.styles.Accent.Render("vidterm"))

	if m.sess.Authenticated() {
		parts = append(parts, m.styles.Muted.Render("@"+m.sess.Handle))
	} else {
		parts = append(parts, m.styles.Muted.Render("not logged in"))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, m.styles.Danger.Render("OFFLINE"))
	}

	if notice := m.controller.Notice(); notice != "" {
		parts = append(parts, m.styles.Notice.Render(notice+" (esc to dismiss)"))
	}

	parts = append(parts, m.styles.Muted.Render("? for help"))
	return strings.Join(parts, "  ·  ")
}
