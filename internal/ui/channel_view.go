package ui

import (
	"fmt"
	"strings"

	"github.com/mwieser/vidterm/internal/api"
	"github.com/mwieser/vidterm/internal/channel"
)

// renderChannel renders the channel view: profile header, tab bar, and the
// collection selected by the active tab.
func (m Model) renderChannel() string {
	var b strings.Builder

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")

	switch m.controller.Phase() {
	case channel.PhaseIdle:
		b.WriteString(m.styles.Muted.Render("Press c to open a channel by handle."))
		return b.String()
	case channel.PhaseLoading:
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Loading @%s...", m.controller.Handle())))
		return b.String()
	case channel.PhaseFailed:
		b.WriteString(m.styles.Danger.Render("Channel not found"))
		b.WriteString("\n")
		if err := m.controller.Err(); err != nil {
			b.WriteString(m.styles.Muted.Render(err.Error()))
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("r retries, c opens another channel."))
		return b.String()
	}

	profile := m.controller.Profile()
	if profile == nil {
		return b.String()
	}

	b.WriteString(m.renderProfileHeader(profile))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.controller.Tab() {
	case channel.TabPlaylists:
		b.WriteString(m.renderPlaylists())
	default:
		b.WriteString(m.renderVideos())
	}

	return b.String()
}

func (m Model) renderProfileHeader(profile *api.ChannelProfile) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(profile.DisplayName))
	b.WriteString("  ")
	b.WriteString(m.styles.Handle.Render("@" + profile.Handle))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s subscribers · %d videos",
		formatCount(int64(profile.SubscriberCount)), len(m.controller.Videos()))))
	b.WriteString("\n")

	switch {
	case m.controller.IsOwner():
		b.WriteString(m.styles.Muted.Render("This is your channel"))
	case m.controller.TogglePending():
		b.WriteString(m.styles.Subscribed.Render("Processing..."))
	case profile.IsSubscribed:
		b.WriteString(m.styles.Subscribed.Render("Subscribed"))
		b.WriteString(m.styles.Muted.Render("  (s to unsubscribe)"))
	default:
		b.WriteString(m.styles.Subscribe.Render("Subscribe"))
		b.WriteString(m.styles.Muted.Render("  (press s)"))
	}

	return b.String()
}

func (m Model) renderTabBar() string {
	videos := " Videos "
	playlists := " Playlists "
	if m.controller.Tab() == channel.TabVideos {
		return m.styles.TabActive.Render(videos) + " " + m.styles.TabHidden.Render(playlists)
	}
	return m.styles.TabHidden.Render(videos) + " " + m.styles.TabActive.Render(playlists)
}

func (m Model) renderVideos() string {
	if err := m.controller.VideosErr(); err != nil {
		return m.styles.Danger.Render("Couldn't load videos") + "\n" +
			m.styles.Muted.Render(err.Error())
	}
	if !m.controller.VideosLoaded() {
		return m.styles.Muted.Render("Loading videos...")
	}
	videos := m.controller.Videos()
	if len(videos) == 0 {
		return m.styles.Muted.Render("No videos yet.")
	}

	var b strings.Builder
	for _, v := range videos {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.styles.Title.Render(v.Title),
			m.styles.Muted.Render("["+formatDuration(v.Duration)+"]")))
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("   %s views · %s",
			formatCount(v.Views), formatTimeAgo(v.ParsedCreatedAt()))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPlaylists() string {
	if err := m.controller.PlaylistsErr(); err != nil {
		return m.styles.Danger.Render("Couldn't load playlists") + "\n" +
			m.styles.Muted.Render(err.Error())
	}
	if !m.controller.PlaylistsLoaded() {
		return m.styles.Muted.Render("Loading playlists...")
	}
	playlists := m.controller.Playlists()

	var b strings.Builder
	if m.controller.IsOwner() {
		b.WriteString(m.styles.Accent.Render("n creates a new playlist"))
		b.WriteString("\n\n")
	}
	if len(playlists) == 0 {
		b.WriteString(m.styles.Muted.Render("No playlists yet."))
		return b.String()
	}
	for _, p := range playlists {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.styles.Title.Render(p.Name),
			m.styles.Muted.Render(fmt.Sprintf("(%d videos)", len(p.Videos)))))
		if p.Description != "" {
			b.WriteString(m.styles.Muted.Render("   " + p.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}
