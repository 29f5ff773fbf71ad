package feed

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwieser/vidterm/internal/api"
)

const defaultPollInterval = 30 * time.Second

// Fetcher retrieves the global video feed. Implemented by *api.Client.
type Fetcher interface {
	FetchFeed(ctx context.Context) ([]api.VideoSummary, error)
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *Store, fetcher Fetcher, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			Refresh(ctx, store, fetcher, logger)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Refresh performs a single feed fetch and records the outcome in the store.
func Refresh(ctx context.Context, store *Store, fetcher Fetcher, logger *log.Logger) {
	videos, err := fetcher.FetchFeed(ctx)
	if err != nil {
		store.Update(nil, err)
		logger.Warn("feed poll failed", "err", err)
		return
	}
	store.Update(videos, nil)
}
