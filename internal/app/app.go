package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwieser/vidterm/internal/api"
	"github.com/mwieser/vidterm/internal/config"
	"github.com/mwieser/vidterm/internal/feed"
	"github.com/mwieser/vidterm/internal/session"
	"github.com/mwieser/vidterm/internal/ui"
)

// Options configure the vidterm application.
type Options struct {
	ConfigPath  string
	SessionPath string // empty uses default ~/.config/vidterm/session.toml
	Channel     string // handle to open on start (optional)
	PollEvery   int    // seconds; zero uses default
}

const defaultPollInterval = 30 * time.Second

// Run boots the vidterm TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	sess := session.Load(opts.SessionPath)
	if !sess.Authenticated() {
		return fmt.Errorf("not logged in; run `vidterm login` first")
	}

	client, err := api.NewClient(cfg.ServerURL, sess.AccessToken)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &feed.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	logger.Info("starting", "server", cfg.ServerURL, "viewer", sess.Handle)

	// The poller fetches once immediately, so the feed is usually warm by
	// the time the first snapshot command runs.
	feed.StartPoller(ctx, store, client, interval, logger)

	uiOpts := ui.Options{
		Context:        ctx,
		Client:         client,
		Store:          store,
		Session:        sess,
		Logger:         logger,
		PollTick:       2 * time.Second,
		InitialChannel: opts.Channel,
	}
	return ui.Run(uiOpts)
}

func openLogger(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := newFileLogger(file)
	return logger, func() { _ = file.Close() }, nil
}

func newFileLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	})
}
