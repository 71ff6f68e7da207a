package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// SessionCookieName is the cookie the LLMit server keeps its login session in.
const SessionCookieName = "session"

// SessionProvider supplies the value of an existing server session cookie.
// An empty value means the client talks to the server anonymously.
type SessionProvider interface {
	SessionCookie() (string, error)
}

// Anonymous never supplies a session.
type Anonymous struct{}

// SessionCookie always returns an empty value.
func (Anonymous) SessionCookie() (string, error) { return "", nil }

// FileSessionProvider reads a session cookie value from a file on disk.
// The client never writes this file; users copy the cookie from a browser
// session they already have.
type FileSessionProvider struct {
	path string
}

// NewFileSessionProvider creates a SessionProvider that reads from the given file path.
func NewFileSessionProvider(path string) *FileSessionProvider {
	return &FileSessionProvider{path: path}
}

// SessionCookie reads and returns the cookie value, trimming whitespace.
// A missing file is not an error.
func (f *FileSessionProvider) SessionCookie() (string, error) {
	if f.path == "" {
		return "", nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading session from %s: %w", f.path, err)
	}

	value := strings.TrimSpace(string(data))
	value = strings.TrimPrefix(value, SessionCookieName+"=")
	if strings.ContainsAny(value, "; \t\r\n") {
		return "", fmt.Errorf("session file %s must hold a single cookie value", f.path)
	}
	return value, nil
}
