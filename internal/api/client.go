package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Querier defines the read and mutate calls the channel view depends on.
// This interface is implemented by *Client and can be used for testing.
type Querier interface {
	FetchProfile(ctx context.Context, handle string) (*ChannelProfile, error)
	FetchVideos(ctx context.Context, ownerID string) ([]VideoSummary, error)
	FetchPlaylists(ctx context.Context, ownerID string) ([]Playlist, error)
	ToggleSubscription(ctx context.Context, channelID string) (*bool, error)
	CreatePlaylist(ctx context.Context, name, description string) (*Playlist, error)
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Client talks to the VidStream HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultServerURL = "http://127.0.0.1:8000"
	defaultUserAgent = "vidterm/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given server base URL. The token may be
// empty for unauthenticated calls such as login.
func NewClient(serverURL, token string) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

// FetchProfile resolves a channel handle to its profile. The endpoint is a
// POST because the server records a channel visit as a side effect.
func (c *Client) FetchProfile(ctx context.Context, handle string) (*ChannelProfile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ValidationError("handle", "must not be empty")
	}
	var payload ChannelProfile
	op := "fetch profile"
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/channel/"+url.PathEscape(handle), nil, &payload, op); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchVideos retrieves the videos uploaded by the given owner.
func (c *Client) FetchVideos(ctx context.Context, ownerID string) ([]VideoSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("userId", ownerID)
	rel := &url.URL{Path: "/api/v1/videos", RawQuery: values.Encode()}
	var payload videoPage
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload, "fetch videos"); err != nil {
		return nil, err
	}
	return payload.Docs, nil
}

// FetchPlaylists retrieves the playlists owned by the given user.
func (c *Client) FetchPlaylists(ctx context.Context, ownerID string) ([]Playlist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Playlist
	if err := c.do(ctx, http.MethodGet, "/api/v1/playlists/user/"+url.PathEscape(ownerID), nil, &payload, "fetch playlists"); err != nil {
		return nil, err
	}
	return payload, nil
}

// ToggleSubscription flips the viewer's subscription to the given channel.
// The returned flag is the server's confirmed state; nil when the server
// omitted it from the response.
func (c *Client) ToggleSubscription(ctx context.Context, channelID string) (*bool, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload toggleResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/subscriptions/c/"+url.PathEscape(channelID), nil, &payload, "toggle subscription"); err != nil {
		return nil, err
	}
	return payload.Subscribed, nil
}

// CreatePlaylist creates a playlist and returns it with its assigned id.
func (c *Client) CreatePlaylist(ctx context.Context, name, description string) (*Playlist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := map[string]string{"name": name, "description": description}
	var payload Playlist
	if err := c.do(ctx, http.MethodPost, "/api/v1/playlists", body, &payload, "create playlist"); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchFeed retrieves the global video feed shown on the home view.
func (c *Client) FetchFeed(ctx context.Context) ([]VideoSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload videoPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos", nil, &payload, "fetch feed"); err != nil {
		return nil, err
	}
	return payload.Docs, nil
}

// Login exchanges credentials for a session token and account details.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := map[string]string{"email": email, "password": password}
	var payload LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/login", body, &payload, "login"); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListAccounts retrieves all platform accounts. Requires an admin session.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Account
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/users", nil, &payload, "list accounts"); err != nil {
		return nil, err
	}
	return payload, nil
}

// SetAccountBlocked toggles the suspension flag on an account and returns its
// updated record. Requires an admin session.
func (c *Client) SetAccountBlocked(ctx context.Context, accountID string) (*Account, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Account
	if err := c.do(ctx, http.MethodPatch, "/api/v1/admin/users/"+url.PathEscape(accountID)+"/block", nil, &payload, "toggle account block"); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any, op string) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest, op)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any, op string) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		apiErr := &Error{Kind: kindForStatus(resp.StatusCode), Op: op, Status: resp.StatusCode}
		if decodeErr == nil && env.Message != "" {
			apiErr.Message = env.Message
		} else {
			apiErr.Message = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return apiErr
	}
	if decodeErr != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if dest == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return nil
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
