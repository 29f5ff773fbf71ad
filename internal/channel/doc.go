// Package channel implements the data-orchestration core of the channel view.
//
// # Overview
//
// A channel view is identified by a human-readable handle. Rendering it takes
// three dependent remote reads in a fixed order: the profile fetch resolves
// the handle to an owner id, and only then can the video and playlist fetches
// be issued. Those two share no ordering dependency and are concurrently in
// flight. The Controller owns all resulting state plus the two local
// mutations layered on top of it: the optimistic subscription toggle and
// prepend-on-create for playlists.
//
// # Concurrency Model
//
// The controller follows the Bubble Tea shape: every remote call is a tea.Cmd
// (a function run off the program loop) whose result comes back as a tea.Msg
// applied by Update on the loop. State is therefore mutated from exactly one
// goroutine and needs no locking. "Concurrent" fetches are concurrently in
// flight, not concurrently applied.
//
// # Stale-Response Discipline
//
// The primary correctness hazard is a slow response for an old handle
// overwriting state for the currently displayed one. Every outgoing fetch is
// tagged with the request key (handle, refresh token) active at issue time.
// Update applies a response only when its tag still equals the controller's
// current key; anything else is logged at debug level and dropped. There is
// no abort of in-flight calls, only logical cancellation at resolution time.
//
// Bumping the RefreshSignal mints a new token, so a bump mid-flight
// supersedes the running sequence the same way a handle change does: exactly
// one settled state survives, the one for the latest key.
//
// # Optimistic Toggle
//
// ToggleSubscription commits the flip locally before the remote call
// confirms. The subscription flag and the subscriber counter move in one
// transition through applyToggle, never as two separate writes. At most one
// toggle per profile may be unconfirmed; re-invocation while pending is a
// no-op, and self-view toggles are rejected locally as a conflict.
//
// Failure policy is commit-and-reconcile: a failed confirmation call does not
// revert the optimistic state, it surfaces a transient notice. When the
// server's response carries its own confirmed flag, that flag is
// authoritative and the controller re-flips to match it if the optimistic
// guess was wrong.
//
// # Error Degradation
//
// A profile fetch failure is terminal for that key: the view shows an error
// until a new handle or a refresh bump starts a fresh sequence. A failed
// video or playlist fetch degrades only its own list; the other list keeps
// whatever it successfully loaded.
package channel
