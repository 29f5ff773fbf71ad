package api

import (
	"encoding/json"
	"time"
)

// ChannelProfile mirrors the channel payload returned by
// /api/v1/users/channel/{handle}.
type ChannelProfile struct {
	ID              string `json:"_id"`
	Handle          string `json:"username"`
	DisplayName     string `json:"fullName"`
	AvatarURL       string `json:"avatar"`
	CoverURL        string `json:"coverImage"`
	SubscriberCount int    `json:"subscriberCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

// VideoSummary describes one uploaded video in transport-friendly form.
type VideoSummary struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnail"`
	Views        int64   `json:"views"`
	Duration     float64 `json:"duration"`
	CreatedAt    string  `json:"createdAt"`
}

// ParsedCreatedAt returns the upload timestamp as time.Time when possible.
func (v VideoSummary) ParsedCreatedAt() time.Time {
	return parseTime(v.CreatedAt)
}

// Playlist mirrors a playlist document. Videos are embedded summaries used
// for thumbnail and count display only.
type Playlist struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Videos      []VideoSummary `json:"videos"`
}

// Account describes a platform user as reported by the admin endpoints.
type Account struct {
	ID        string `json:"_id"`
	Handle    string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	IsBlocked bool   `json:"isBlocked"`
	CreatedAt string `json:"createdAt"`
}

// ParsedCreatedAt returns the account creation timestamp when possible.
func (a Account) ParsedCreatedAt() time.Time {
	return parseTime(a.CreatedAt)
}

// LoginResult carries the session material returned by /api/v1/users/login.
type LoginResult struct {
	User        Account `json:"user"`
	AccessToken string  `json:"accessToken"`
}

// envelope is the server's uniform response wrapper.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

// videoPage mirrors the paginated video listing under envelope.data.
type videoPage struct {
	Docs []VideoSummary `json:"docs"`
}

// toggleResult mirrors the subscription toggle confirmation payload. The
// Subscribed pointer distinguishes "server omitted the flag" from false.
type toggleResult struct {
	Subscribed *bool `json:"subscribed"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
