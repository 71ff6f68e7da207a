package llmit

import (
	"html"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy drops every tag. Post and comment bodies are user-authored
// and may carry raw HTML.
var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText turns user-authored text into something safe to print on a
// terminal: tags stripped, entities decoded, escapes and control characters
// removed. Newlines and tabs survive.
func sanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n", "</p>", "\n").Replace(s)
	s = strictPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.TrimSpace(sanitizeForTerminal(s))
}

func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\x1b' || unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// timestampLayouts covers Python's isoformat() with and without
// microseconds, then RFC 3339.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
