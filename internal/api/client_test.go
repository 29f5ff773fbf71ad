package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}

	u, err = parseBaseURL("http://tube.example.com:9000/base?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("192.168.1.20:8000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "192.168.1.20:8000" {
		t.Fatalf("url = %q, want http://192.168.1.20:8000", u.String())
	}
}

func envelopeJSON(t *testing.T, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	out, err := json.Marshal(map[string]any{
		"statusCode": 200,
		"data":       json.RawMessage(raw),
		"message":    "OK",
		"success":    true,
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return out
}

func TestClient_FetchesEndpointsAndSetsHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID, gotUserAgent string
	var gotProfileMethod string
	var gotVideosQuery string
	var gotCreateBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/v1/users/channel/alice":
			gotProfileMethod = r.Method
			_, _ = w.Write(envelopeJSON(t, ChannelProfile{
				ID:              "u1",
				Handle:          "alice",
				SubscriberCount: 10,
			}))
		case r.URL.Path == "/api/v1/videos" && r.URL.Query().Get("userId") != "":
			gotVideosQuery = r.URL.Query().Get("userId")
			_, _ = w.Write(envelopeJSON(t, map[string]any{
				"docs": []VideoSummary{{ID: "v1", Title: "First"}},
			}))
		case r.URL.Path == "/api/v1/playlists/user/u1":
			_, _ = w.Write(envelopeJSON(t, []Playlist{{ID: "p1", Name: "Mix"}}))
		case r.URL.Path == "/api/v1/subscriptions/c/u1":
			_, _ = w.Write(envelopeJSON(t, map[string]bool{"subscribed": true}))
		case r.URL.Path == "/api/v1/playlists" && r.Method == http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotCreateBody)
			_, _ = w.Write(envelopeJSON(t, Playlist{ID: "p9", Name: "New", Description: "Fresh"}))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "token123")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	profile, err := c.FetchProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("FetchProfile returned error: %v", err)
	}
	if profile.ID != "u1" || profile.SubscriberCount != 10 {
		t.Fatalf("FetchProfile payload = %#v, want u1 with 10 subscribers", profile)
	}
	if gotProfileMethod != http.MethodPost {
		t.Fatalf("profile method = %q, want POST", gotProfileMethod)
	}

	videos, err := c.FetchVideos(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchVideos returned error: %v", err)
	}
	if len(videos) != 1 || videos[0].ID != "v1" {
		t.Fatalf("FetchVideos = %#v, want 1 video v1", videos)
	}
	if gotVideosQuery != "u1" {
		t.Fatalf("videos userId query = %q, want u1", gotVideosQuery)
	}

	playlists, err := c.FetchPlaylists(ctx, "u1")
	if err != nil {
		t.Fatalf("FetchPlaylists returned error: %v", err)
	}
	if len(playlists) != 1 || playlists[0].ID != "p1" {
		t.Fatalf("FetchPlaylists = %#v, want 1 playlist p1", playlists)
	}

	confirmed, err := c.ToggleSubscription(ctx, "u1")
	if err != nil {
		t.Fatalf("ToggleSubscription returned error: %v", err)
	}
	if confirmed == nil || !*confirmed {
		t.Fatalf("ToggleSubscription = %v, want confirmed true", confirmed)
	}

	created, err := c.CreatePlaylist(ctx, "New", "Fresh")
	if err != nil {
		t.Fatalf("CreatePlaylist returned error: %v", err)
	}
	if created.ID != "p9" {
		t.Fatalf("CreatePlaylist id = %q, want p9", created.ID)
	}
	if gotCreateBody["name"] != "New" || gotCreateBody["description"] != "Fresh" {
		t.Fatalf("create body = %v, want name/description", gotCreateBody)
	}

	if gotAuth != "Bearer token123" {
		t.Fatalf("Authorization = %q, want Bearer token123", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-Id header missing")
	}
	if !strings.HasPrefix(gotUserAgent, "vidterm/") {
		t.Fatalf("User-Agent = %q, want vidterm/*", gotUserAgent)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/users/channel/ghost":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":404,"message":"channel does not exist","success":false}`))
		case "/api/v1/subscriptions/c/self":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"statusCode":409,"message":"cannot subscribe to own channel","success":false}`))
		case "/api/v1/videos":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchProfile(ctx, "ghost")
	if !IsNotFound(err) {
		t.Fatalf("FetchProfile error = %v, want not-found", err)
	}
	if !strings.Contains(err.Error(), "channel does not exist") {
		t.Fatalf("FetchProfile error = %v, want server message preserved", err)
	}

	_, err = c.ToggleSubscription(ctx, "self")
	if !IsConflict(err) {
		t.Fatalf("ToggleSubscription error = %v, want conflict", err)
	}

	_, err = c.FetchFeed(ctx)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchFeed error = %v, want decode response error", err)
	}

	_, err = c.FetchPlaylists(ctx, "u1")
	if err == nil || ErrKind(err) != KindNetwork {
		t.Fatalf("FetchPlaylists error = %v, want network kind", err)
	}
}

func TestClient_FetchProfileRejectsEmptyHandle(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchProfile(context.Background(), "  ")
	if !IsValidation(err) {
		t.Fatalf("FetchProfile error = %v, want validation failure", err)
	}
}

func TestClient_ToggleWithoutServerFlag(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200,"data":{},"message":"toggled","success":true}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	confirmed, err := c.ToggleSubscription(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ToggleSubscription returned error: %v", err)
	}
	if confirmed != nil {
		t.Fatalf("confirmed = %v, want nil when server omits the flag", *confirmed)
	}
}
