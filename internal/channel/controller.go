package channel

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mwieser/vidterm/internal/api"
)

// Phase describes the profile fetch lifecycle for the current handle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// requestKey identifies one fetch sequence. Every outgoing command is tagged
// with the key active at issue time; responses carrying a different key are
// dropped on arrival.
type requestKey struct {
	handle string
	token  int
}

// Controller orchestrates the ordered fetch sequence for a channel view and
// owns its profile, video, and playlist state. It is single-threaded by
// construction: remote calls run as Bubble Tea commands and their results are
// applied through Update on the program loop.
type Controller struct {
	ctx      context.Context
	client   api.Querier
	viewerID string
	logger   *log.Logger

	key     requestKey
	refresh RefreshSignal

	phase   Phase
	profile *api.ChannelProfile
	loadErr error

	videos       []api.VideoSummary
	videosErr    error
	videosLoaded bool

	playlists       []api.Playlist
	playlistsErr    error
	playlistsLoaded bool

	tab           Tab
	togglePending bool
	creating      bool
	notice        string
}

// New builds a Controller for the given viewer identity. The viewer id may be
// empty for an anonymous session; it is only used to detect self-view.
func New(ctx context.Context, client api.Querier, viewerID string, logger *log.Logger) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		ctx:      ctx,
		client:   client,
		viewerID: viewerID,
		logger:   logger,
		tab:      TabVideos,
	}
}

// Messages produced by the controller's commands. The ui layer forwards every
// tea.Msg to Update, which claims the ones it recognizes.

type profileLoadedMsg struct {
	key     requestKey
	profile *api.ChannelProfile
}

type profileFailedMsg struct {
	key requestKey
	err error
}

type videosLoadedMsg struct {
	key    requestKey
	videos []api.VideoSummary
}

type videosFailedMsg struct {
	key requestKey
	err error
}

type playlistsLoadedMsg struct {
	key       requestKey
	playlists []api.Playlist
}

type playlistsFailedMsg struct {
	key requestKey
	err error
}

type toggleConfirmedMsg struct {
	channelID string
	confirmed *bool
}

type toggleFailedMsg struct {
	channelID string
	err       error
}

type playlistCreatedMsg struct {
	key      requestKey
	playlist *api.Playlist
}

type playlistCreateFailedMsg struct {
	key requestKey
	err error
}

// Load starts the fetch sequence for a channel handle. An empty handle issues
// no fetch and leaves the controller in its previous state. Loading a
// different handle discards all state from the prior one immediately.
func (c *Controller) Load(handle string) tea.Cmd {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil
	}
	return c.begin(requestKey{handle: handle, token: c.refresh.Current()})
}

// Bump increments the refresh signal and re-runs the full fetch sequence for
// the current handle. Used after an out-of-band edit invalidates cached data.
func (c *Controller) Bump() tea.Cmd {
	if c.key.handle == "" {
		return nil
	}
	return c.begin(requestKey{handle: c.key.handle, token: c.refresh.Bump()})
}

func (c *Controller) begin(key requestKey) tea.Cmd {
	c.key = key
	c.phase = PhaseLoading
	c.profile = nil
	c.loadErr = nil
	c.videos = nil
	c.videosErr = nil
	c.videosLoaded = false
	c.playlists = nil
	c.playlistsErr = nil
	c.playlistsLoaded = false
	c.togglePending = false
	c.creating = false
	c.notice = ""
	return c.fetchProfileCmd(key)
}

// Update applies a controller message and reports whether the message was
// one of its own. Responses tagged with a superseded request key are
// discarded without touching state.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.key != c.key {
			c.discard("profile", msg.key)
			return nil, true
		}
		c.profile = msg.profile
		c.phase = PhaseReady
		// The gating fetch resolved; the two list fetches share no ordering
		// dependency and run concurrently in flight.
		return tea.Batch(
			c.fetchVideosCmd(msg.key, msg.profile.ID),
			c.fetchPlaylistsCmd(msg.key, msg.profile.ID),
		), true

	case profileFailedMsg:
		if msg.key != c.key {
			c.discard("profile", msg.key)
			return nil, true
		}
		c.phase = PhaseFailed
		c.loadErr = msg.err
		c.profile = nil
		c.videos = nil
		c.videosLoaded = false
		c.playlists = nil
		c.playlistsLoaded = false
		return nil, true

	case videosLoadedMsg:
		if msg.key != c.key {
			c.discard("videos", msg.key)
			return nil, true
		}
		c.videos = msg.videos
		c.videosErr = nil
		c.videosLoaded = true
		return nil, true

	case videosFailedMsg:
		if msg.key != c.key {
			c.discard("videos", msg.key)
			return nil, true
		}
		c.videosErr = msg.err
		c.videosLoaded = true
		return nil, true

	case playlistsLoadedMsg:
		if msg.key != c.key {
			c.discard("playlists", msg.key)
			return nil, true
		}
		c.playlists = msg.playlists
		c.playlistsErr = nil
		c.playlistsLoaded = true
		return nil, true

	case playlistsFailedMsg:
		if msg.key != c.key {
			c.discard("playlists", msg.key)
			return nil, true
		}
		c.playlistsErr = msg.err
		c.playlistsLoaded = true
		return nil, true

	case toggleConfirmedMsg:
		c.applyToggleConfirmation(msg)
		return nil, true

	case toggleFailedMsg:
		c.applyToggleFailure(msg)
		return nil, true

	case playlistCreatedMsg:
		if msg.key != c.key {
			c.discard("create playlist", msg.key)
			return nil, true
		}
		c.creating = false
		// Prepend, never refetch: the collection is insertion-order
		// significant and the server already assigned the id.
		c.playlists = append([]api.Playlist{*msg.playlist}, c.playlists...)
		return nil, true

	case playlistCreateFailedMsg:
		if msg.key != c.key {
			c.discard("create playlist", msg.key)
			return nil, true
		}
		c.creating = false
		c.notice = msg.err.Error()
		return nil, true
	}

	return nil, false
}

func (c *Controller) discard(op string, stale requestKey) {
	c.logger.Debug("discarding stale response",
		"op", op,
		"stale_handle", stale.handle,
		"stale_token", stale.token,
		"current_handle", c.key.handle,
		"current_token", c.key.token,
	)
}

// Commands

func (c *Controller) fetchProfileCmd(key requestKey) tea.Cmd {
	return func() tea.Msg {
		profile, err := c.client.FetchProfile(c.ctx, key.handle)
		if err != nil {
			return profileFailedMsg{key: key, err: err}
		}
		return profileLoadedMsg{key: key, profile: profile}
	}
}

func (c *Controller) fetchVideosCmd(key requestKey, ownerID string) tea.Cmd {
	return func() tea.Msg {
		videos, err := c.client.FetchVideos(c.ctx, ownerID)
		if err != nil {
			return videosFailedMsg{key: key, err: err}
		}
		return videosLoadedMsg{key: key, videos: videos}
	}
}

func (c *Controller) fetchPlaylistsCmd(key requestKey, ownerID string) tea.Cmd {
	return func() tea.Msg {
		playlists, err := c.client.FetchPlaylists(c.ctx, ownerID)
		if err != nil {
			return playlistsFailedMsg{key: key, err: err}
		}
		return playlistsLoadedMsg{key: key, playlists: playlists}
	}
}

// Accessors

// Handle returns the handle of the current fetch sequence.
func (c *Controller) Handle() string { return c.key.handle }

// Phase returns the profile fetch lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Profile returns the current channel profile, or nil while loading/failed.
func (c *Controller) Profile() *api.ChannelProfile { return c.profile }

// Err returns the profile fetch failure, if any.
func (c *Controller) Err() error { return c.loadErr }

// Videos returns the current video list.
func (c *Controller) Videos() []api.VideoSummary { return c.videos }

// VideosErr returns the video fetch failure, if any.
func (c *Controller) VideosErr() error { return c.videosErr }

// VideosLoaded reports whether the video fetch has settled.
func (c *Controller) VideosLoaded() bool { return c.videosLoaded }

// Playlists returns the current playlist list.
func (c *Controller) Playlists() []api.Playlist { return c.playlists }

// PlaylistsErr returns the playlist fetch failure, if any.
func (c *Controller) PlaylistsErr() error { return c.playlistsErr }

// PlaylistsLoaded reports whether the playlist fetch has settled.
func (c *Controller) PlaylistsLoaded() bool { return c.playlistsLoaded }

// IsOwner reports whether the viewer is looking at their own channel.
func (c *Controller) IsOwner() bool {
	return c.profile != nil && c.viewerID != "" && c.viewerID == c.profile.ID
}

// TogglePending reports whether a subscription toggle awaits confirmation.
func (c *Controller) TogglePending() bool { return c.togglePending }

// Creating reports whether a playlist create call is outstanding.
func (c *Controller) Creating() bool { return c.creating }

// Notice returns the transient, dismissible message for the view, if any.
func (c *Controller) Notice() string { return c.notice }

// ClearNotice dismisses the transient message.
func (c *Controller) ClearNotice() { c.notice = "" }
