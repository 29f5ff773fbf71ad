package feed

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwieser/vidterm/internal/api"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	videos := []api.VideoSummary{{ID: "v1"}, {ID: "v2"}}

	before := time.Now()
	s.Update(videos, nil)

	snap := s.Snapshot()
	if !snap.Loaded {
		t.Fatalf("Loaded = false after successful update")
	}
	if len(snap.Videos) != 2 || snap.Videos[0].ID != "v1" {
		t.Fatalf("snapshot videos = %#v, want 2 items", snap.Videos)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Videos[0].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Videos[0].ID != "v1" {
		t.Fatalf("Snapshot should clone videos; got id %q want v1", snap2.Videos[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]api.VideoSummary{{ID: "v1"}}, nil)
	s.Update(nil, errors.New("boom"))

	snap := s.Snapshot()
	if len(snap.Videos) != 1 || snap.Videos[0].ID != "v1" {
		t.Fatalf("videos changed on error: %#v", snap.Videos)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
}

func TestStore_ConsecutiveFailuresAndOffline(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true with no failures")
	}

	s.Update(nil, errors.New("fail 1"))
	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true after a single failure")
	}

	s.Update(nil, errors.New("fail 2"))
	if !s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = false after two failures")
	}

	s.Update(nil, nil)
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("failures = %d offline = %v after success, want reset", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

type fakeFetcher struct {
	videos []api.VideoSummary
	err    error
	calls  int
}

func (f *fakeFetcher) FetchFeed(context.Context) ([]api.VideoSummary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

func TestRefresh_RecordsSuccessAndFailure(t *testing.T) {
	var s Store
	logger := log.New(io.Discard)

	fetcher := &fakeFetcher{videos: []api.VideoSummary{{ID: "v1"}}}
	Refresh(context.Background(), &s, fetcher, logger)
	if snap := s.Snapshot(); len(snap.Videos) != 1 || snap.LastError != nil {
		t.Fatalf("snapshot after success = %#v", snap)
	}

	fetcher.err = errors.New("unreachable")
	Refresh(context.Background(), &s, fetcher, logger)
	snap := s.Snapshot()
	if snap.LastError == nil || len(snap.Videos) != 1 {
		t.Fatalf("snapshot after failure = %#v, want error recorded and data kept", snap)
	}
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}
