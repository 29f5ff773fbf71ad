// Package feed maintains the home-feed snapshot behind the UI.
//
// A background poller fetches the global video listing at a fixed cadence
// and records the outcome in a mutex-guarded Store; the UI reads immutable
// snapshot copies on its own refresh ticks. Polling errors keep the previous
// data visible and increment a consecutive-failure counter that drives the
// offline indicator. The feed deliberately has none of the ordering or
// optimism concerns of the channel view: it is a plain poll-and-replace
// collection.
package feed
