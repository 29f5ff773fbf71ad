package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwieser/vidterm/internal/api"
	"github.com/mwieser/vidterm/internal/feed"
	"github.com/mwieser/vidterm/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Store:    &feed.Store{},
		Session:  session.Session{AccessToken: "t", UserID: "u1", Handle: "alice"},
		PollTick: time.Second,
	})
	m.ready = true
	m.width = 80
	m.height = 24
	return m
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_SnapshotMessageInstallsFeed(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(snapshotMsg(feed.Snapshot{
		Videos: []api.VideoSummary{{ID: "v1", Title: "First"}},
		Loaded: true,
	}))
	m = next.(Model)

	if len(m.snapshot.Videos) != 1 {
		t.Fatalf("snapshot videos = %d, want 1", len(m.snapshot.Videos))
	}
}

func TestUpdate_SelectionClampedToFeed(t *testing.T) {
	m := newTestModel(t)
	m.selectedRow = 5

	next, _ := m.Update(snapshotMsg(feed.Snapshot{
		Videos: []api.VideoSummary{{ID: "v1"}, {ID: "v2"}},
		Loaded: true,
	}))
	m = next.(Model)

	if m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want clamped to 1", m.selectedRow)
	}
}

func TestHandleKey_OpensAndCancelsChannelPrompt(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg('c'))
	m = next.(Model)
	if !m.promptOpen {
		t.Fatalf("prompt not open after c")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.promptOpen {
		t.Fatalf("prompt still open after esc")
	}
	if m.currentView != ViewFeed {
		t.Fatalf("view = %v, want feed", m.currentView)
	}
}

func TestHandleKey_EmptyPromptStaysOnFeed(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg('c'))
	m = next.(Model)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if cmd != nil {
		t.Fatalf("empty handle produced a load command")
	}
	if m.currentView != ViewFeed {
		t.Fatalf("view = %v, want feed after empty handle", m.currentView)
	}
}

func TestHandleKey_FeedNavigation(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(snapshotMsg(feed.Snapshot{
		Videos: []api.VideoSummary{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}},
		Loaded: true,
	}))
	m = next.(Model)

	next, _ = m.Update(keyMsg('j'))
	m = next.(Model)
	next, _ = m.Update(keyMsg('j'))
	m = next.(Model)
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d after two j, want 2", m.selectedRow)
	}
	// Does not run past the end.
	next, _ = m.Update(keyMsg('j'))
	m = next.(Model)
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d, want clamped at 2", m.selectedRow)
	}

	next, _ = m.Update(keyMsg('g'))
	m = next.(Model)
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d after g, want 0", m.selectedRow)
	}
}

func TestView_RendersWithoutData(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); out == "" {
		t.Fatalf("View returned empty string")
	}

	m.currentView = ViewChannel
	if out := m.View(); out == "" {
		t.Fatalf("channel View returned empty string")
	}
}
