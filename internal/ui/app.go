package ui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mwieser/vidterm/internal/api"
	"github.com/mwieser/vidterm/internal/channel"
	"github.com/mwieser/vidterm/internal/feed"
	"github.com/mwieser/vidterm/internal/session"
)

// View represents the current active view.
type View int

const (
	ViewFeed View = iota
	ViewChannel
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Client         *api.Client
	Store          *feed.Store
	Session        session.Session
	Logger         *log.Logger
	PollTick       time.Duration
	InitialChannel string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx      context.Context
	client   *api.Client
	store    *feed.Store
	sess     session.Session
	logger   *log.Logger
	pollTick time.Duration

	controller *channel.Controller

	keys   keyMap
	styles Styles

	currentView    View
	initialChannel string
	width          int
	height         int
	ready          bool

	// Feed state
	snapshot    feed.Snapshot
	selectedRow int

	// Channel prompt
	promptOpen  bool
	promptInput textinput.Model

	// Create-playlist modal
	modalOpen  bool
	nameInput  textinput.Model
	descInput  textinput.Model
	modalFocus int
	fieldErr   string

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 2 * time.Second
	}

	prompt := textinput.New()
	prompt.Placeholder = "channel handle"
	prompt.CharLimit = 64
	prompt.Width = 32

	name := textinput.New()
	name.Placeholder = "e.g. My Favorite Uploads"
	name.CharLimit = 120
	name.Width = 40

	desc := textinput.New()
	desc.Placeholder = "What's this playlist about?"
	desc.CharLimit = 500
	desc.Width = 40

	view := ViewFeed
	initial := strings.TrimSpace(opts.InitialChannel)
	if initial != "" {
		view = ViewChannel
	}

	return Model{
		ctx:            ctx,
		client:         opts.Client,
		store:          opts.Store,
		sess:           opts.Session,
		logger:         logger,
		pollTick:       pollTick,
		controller:     channel.New(ctx, opts.Client, opts.Session.UserID, logger),
		keys:           defaultKeyMap(),
		styles:         defaultStyles(),
		currentView:    view,
		initialChannel: initial,
		promptInput:    prompt,
		nameInput:      name,
		descInput:      desc,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.initialChannel != "" {
		if cmd := m.controller.Load(m.initialChannel); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = feed.Snapshot(msg)
		m.clampSelection()
		return m, nil
	}

	// Everything else may belong to the channel controller.
	if cmd, handled := m.controller.Update(msg); handled {
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.promptOpen {
		return m.handlePromptKey(msg)
	}
	if m.modalOpen {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.controller.Notice() != "" {
			m.controller.ClearNotice()
			return m, nil
		}
		m.currentView = ViewFeed
		return m, nil

	case key.Matches(msg, m.keys.ViewFeed):
		m.currentView = ViewFeed
		return m, nil

	case key.Matches(msg, m.keys.OpenChannel):
		m.promptOpen = true
		m.promptInput.SetValue("")
		return m, m.promptInput.Focus()
	}

	switch m.currentView {
	case ViewFeed:
		return m.handleFeedKey(msg)
	case ViewChannel:
		return m.handleChannelKey(msg)
	}
	return m, nil
}

func (m Model) handleFeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Videos)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.selectedRow = count - 1
		}
	}
	return m, nil
}

func (m Model) handleChannelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TabVideos):
		m.controller.SelectTab(channel.TabVideos)
		return m, nil

	case key.Matches(msg, m.keys.TabPlaylists):
		m.controller.SelectTab(channel.TabPlaylists)
		return m, nil

	case key.Matches(msg, m.keys.CycleTab):
		if m.controller.Tab() == channel.TabVideos {
			m.controller.SelectTab(channel.TabPlaylists)
		} else {
			m.controller.SelectTab(channel.TabVideos)
		}
		return m, nil

	case key.Matches(msg, m.keys.Subscribe):
		return m, m.controller.ToggleSubscription()

	case key.Matches(msg, m.keys.NewPlaylist):
		if !m.controller.IsOwner() {
			return m, nil
		}
		m.modalOpen = true
		m.modalFocus = 0
		m.fieldErr = ""
		m.nameInput.SetValue("")
		m.descInput.SetValue("")
		m.descInput.Blur()
		return m, m.nameInput.Focus()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.controller.Bump()
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.promptOpen = false
		m.promptInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		handle := m.promptInput.Value()
		m.promptOpen = false
		m.promptInput.Blur()
		if cmd := m.controller.Load(handle); cmd != nil {
			m.currentView = ViewChannel
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.modalOpen = false
		m.nameInput.Blur()
		m.descInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.CycleTab):
		if m.modalFocus == 0 {
			m.modalFocus = 1
			m.nameInput.Blur()
			return m, m.descInput.Focus()
		}
		m.modalFocus = 0
		m.descInput.Blur()
		return m, m.nameInput.Focus()

	case key.Matches(msg, m.keys.Confirm):
		cmd, err := m.controller.CreatePlaylist(m.nameInput.Value(), m.descInput.Value())
		if err != nil {
			// Field-level validation message; the modal stays open.
			m.fieldErr = err.Error()
			return m, nil
		}
		m.modalOpen = false
		m.fieldErr = ""
		m.nameInput.Blur()
		m.descInput.Blur()
		return m, cmd
	}

	var cmd tea.Cmd
	if m.modalFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) clampSelection() {
	if count := len(m.snapshot.Videos); m.selectedRow >= count {
		if count == 0 {
			m.selectedRow = 0
		} else {
			m.selectedRow = count - 1
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modalOpen {
		return m.renderCreateModal()
	}
	if m.promptOpen {
		return m.renderPrompt()
	}

	switch m.currentView {
	case ViewChannel:
		return m.renderChannel()
	default:
		return m.renderFeed()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg feed.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *feed.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
