package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 15 * time.Second
)

// Config holds application-level configuration.
type Config struct {
	BaseURL     string        // e.g. "https://llmit.example"
	SessionPath string        // Path to a file holding a session cookie value
	LogPath     string        // Where log output goes while the TUI owns the terminal
	Timeout     time.Duration // Per-request HTTP timeout
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory. Variables already set win over .env.
//
//	LLMIT_URL     : server base URL (default: http://localhost:5000)
//	LLMIT_SESSION : session cookie file (default: ~/.config/llmit/session)
//	LLMIT_LOG     : log file (default: $TMPDIR/llmit.log)
//	LLMIT_TIMEOUT : request timeout as a Go duration (default: 15s)
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (Config, error) {
	base := strings.TrimSpace(os.Getenv("LLMIT_URL"))
	if base == "" {
		base = defaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid LLMIT_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return Config{}, fmt.Errorf("invalid LLMIT_URL: scheme must be http or https")
	}
	base = strings.TrimRight(parsed.String(), "/")

	sessionPath := os.Getenv("LLMIT_SESSION")
	if sessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		sessionPath = filepath.Join(home, ".config", "llmit", "session")
	}

	logPath := os.Getenv("LLMIT_LOG")
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), "llmit.log")
	}

	timeout := defaultTimeout
	if raw := strings.TrimSpace(os.Getenv("LLMIT_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid LLMIT_TIMEOUT %q: must be a positive duration", raw)
		}
		timeout = d
	}

	return Config{
		BaseURL:     base,
		SessionPath: sessionPath,
		LogPath:     logPath,
		Timeout:     timeout,
	}, nil
}
