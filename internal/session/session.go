// Package session persists the authenticated viewer identity.
// Sessions are stored in ~/.config/vidterm/session.toml.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Session holds the persisted login material: the bearer token attached to
// outgoing API calls and the viewer identity used to detect self-view.
type Session struct {
	AccessToken string `toml:"access_token"`
	UserID      string `toml:"user_id"`
	Handle      string `toml:"handle"`
	DisplayName string `toml:"display_name"`
}

const defaultSessionPath = "~/.config/vidterm/session.toml"

// Authenticated reports whether a usable session is present.
func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.AccessToken) != "" && strings.TrimSpace(s.UserID) != ""
}

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// Load reads the session from the given path. A missing or unreadable file
// yields an empty (unauthenticated) session rather than an error.
func Load(path string) Session {
	resolved, err := resolvePath(path)
	if err != nil {
		return Session{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Session{}
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Session{}
	}

	var s Session
	if err := toml.Unmarshal(bytes, &s); err != nil {
		return Session{}
	}
	return s
}

// Save writes the session to the given path, creating directories as needed.
// The file is user-readable only since it contains the access token.
func Save(path string, s Session) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Clear removes the persisted session. A missing file is not an error.
func Clear(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
