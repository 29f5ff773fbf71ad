// Package ui provides the Bubble Tea terminal interface for vidterm.
//
// The root Model owns two views: the home feed (backed by feed.Store
// snapshots refreshed on a tick) and the channel view (backed by
// channel.Controller). The ui layer is strictly presentational: every
// ordering, optimism, and staleness rule lives in the channel package; this
// package only translates key presses into controller calls and forwards
// controller messages through Update.
//
// Overlays (the handle prompt, the create-playlist modal, and the help
// screen) capture keyboard input while open. Validation failures from
// playlist creation render as a field-level message inside the modal and
// never leave the form.
package ui
