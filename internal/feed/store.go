package feed

import (
	"fmt"
	"sync"
	"time"

	"github.com/mwieser/vidterm/internal/api"
)

// Snapshot represents the latest feed data available to the UI.
type Snapshot struct {
	Videos              []api.VideoSummary
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the server has been unreachable for multiple
// polls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the feed snapshot. The background
// poller is the single writer; the UI reads snapshots at its own cadence.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous feed
// is kept but the error is recorded for visibility.
func (s *Store) Update(videos []api.VideoSummary, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Videos = cloneVideos(videos)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Videos = cloneVideos(s.snapshot.Videos)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneVideos(videos []api.VideoSummary) []api.VideoSummary {
	if len(videos) == 0 {
		return nil
	}
	dup := make([]api.VideoSummary, len(videos))
	copy(dup, videos)
	return dup
}
