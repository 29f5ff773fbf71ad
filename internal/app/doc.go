// Package app wires the vidterm pieces together: it loads configuration
// and the saved session, opens the log file, constructs the API client
// and feed store, starts the background feed poller, and hands control
// to the terminal UI.
//
// The package exists so cmd/vidterm stays a thin flag-parsing shell and
// the composition logic can be reasoned about in one place.
package app
