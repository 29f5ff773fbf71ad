package channel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwieser/vidterm/internal/api"
)

// applyToggle returns the profile with its subscription state flipped and the
// subscriber counter adjusted in the same transition. The two fields must
// never change independently; all toggle paths go through here.
func applyToggle(p api.ChannelProfile) api.ChannelProfile {
	if p.IsSubscribed {
		p.IsSubscribed = false
		if p.SubscriberCount > 0 {
			p.SubscriberCount--
		}
	} else {
		p.IsSubscribed = true
		p.SubscriberCount++
	}
	return p
}

// ToggleSubscription optimistically flips the viewer's subscription to the
// current channel and issues the confirming remote call. It is a no-op while
// a previous toggle is unconfirmed, and rejected outright on self-view.
//
// Failure policy is commit-and-reconcile: a failed call leaves the optimistic
// state in place and surfaces a transient notice. The server's confirmed flag
// is authoritative and overrides the optimistic guess when it disagrees.
func (c *Controller) ToggleSubscription() tea.Cmd {
	if c.profile == nil || c.togglePending {
		return nil
	}
	if c.IsOwner() {
		c.notice = api.ConflictError("subscribe", "cannot subscribe to your own channel").Error()
		return nil
	}

	updated := applyToggle(*c.profile)
	c.profile = &updated
	c.togglePending = true

	channelID := updated.ID
	return func() tea.Msg {
		confirmed, err := c.client.ToggleSubscription(c.ctx, channelID)
		if err != nil {
			return toggleFailedMsg{channelID: channelID, err: err}
		}
		return toggleConfirmedMsg{channelID: channelID, confirmed: confirmed}
	}
}

func (c *Controller) applyToggleConfirmation(msg toggleConfirmedMsg) {
	if c.profile == nil || c.profile.ID != msg.channelID {
		c.discard("toggle", c.key)
		return
	}
	c.togglePending = false
	if msg.confirmed != nil && *msg.confirmed != c.profile.IsSubscribed {
		// The optimistic guess was wrong, e.g. it was made against stale
		// state. Re-flip so flag and counter move together.
		reconciled := applyToggle(*c.profile)
		c.profile = &reconciled
	}
}

func (c *Controller) applyToggleFailure(msg toggleFailedMsg) {
	if c.profile == nil || c.profile.ID != msg.channelID {
		c.discard("toggle", c.key)
		return
	}
	c.togglePending = false
	c.notice = msg.err.Error()
}
