package channel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwieser/vidterm/internal/api"
)

// CreatePlaylist validates the fields locally and issues the remote create
// call. Validation failures return a field-level error and no command; no
// request is made. On success the created playlist is prepended to the
// collection by Update without a refetch.
func (c *Controller) CreatePlaylist(name, description string) (tea.Cmd, error) {
	if strings.TrimSpace(name) == "" {
		return nil, api.ValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, api.ValidationError("description", "must not be empty")
	}
	if c.creating {
		return nil, nil
	}
	c.creating = true

	key := c.key
	return func() tea.Msg {
		playlist, err := c.client.CreatePlaylist(c.ctx, name, description)
		if err != nil {
			return playlistCreateFailedMsg{key: key, err: err}
		}
		return playlistCreatedMsg{key: key, playlist: playlist}
	}, nil
}
