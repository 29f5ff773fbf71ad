package channel

// Tab selects which content collection the channel view displays. Switching
// tabs is a pure state change; the lists were already fetched.
type Tab int

const (
	TabVideos Tab = iota
	TabPlaylists
)

func (t Tab) String() string {
	switch t {
	case TabPlaylists:
		return "Playlists"
	default:
		return "Videos"
	}
}

// Tab returns the active content tab.
func (c *Controller) Tab() Tab { return c.tab }

// SelectTab switches the active content tab. Only explicit selection changes
// it; no fetch result ever does.
func (c *Controller) SelectTab(t Tab) {
	switch t {
	case TabVideos, TabPlaylists:
		c.tab = t
	}
}
