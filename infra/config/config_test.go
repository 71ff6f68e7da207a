package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_ParsesEnv(t *testing.T) {
	t.Setenv("LLMIT_URL", "https://llmit.example/")
	t.Setenv("LLMIT_SESSION", "/tmp/session")
	t.Setenv("LLMIT_LOG", "/tmp/llmit-test.log")
	t.Setenv("LLMIT_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://llmit.example", cfg.BaseURL, "base URL must be normalized")
	assert.Equal(t, "/tmp/session", cfg.SessionPath)
	assert.Equal(t, "/tmp/llmit-test.log", cfg.LogPath)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestFromEnv_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LLMIT_URL", "")
	t.Setenv("LLMIT_SESSION", "")
	t.Setenv("LLMIT_LOG", "")
	t.Setenv("LLMIT_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, filepath.Join(home, ".config", "llmit", "session"), cfg.SessionPath)
	assert.Equal(t, "llmit.log", filepath.Base(cfg.LogPath))
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name, url, timeout string
	}{
		{name: "relative url", url: "llmit.example"},
		{name: "ftp scheme", url: "ftp://llmit.example"},
		{name: "bad timeout", url: "http://localhost:5000", timeout: "soon"},
		{name: "negative timeout", url: "http://localhost:5000", timeout: "-1s"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LLMIT_URL", tc.url)
			t.Setenv("LLMIT_TIMEOUT", tc.timeout)
			t.Setenv("LLMIT_SESSION", "/tmp/session")
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
