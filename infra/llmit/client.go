package llmit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/infra/auth"
)

// Client is a thin HTTP wrapper for the LLMit JSON API.
// It handles base URL construction, the session cookie, request ids and
// error decoding. It never retries.
type Client struct {
	baseURL string
	session auth.SessionProvider
	http    *http.Client
}

// NewClient creates an LLMit API client. A nil session provider means
// anonymous access.
func NewClient(baseURL string, sp auth.SessionProvider, timeout time.Duration) *Client {
	if sp == nil {
		sp = auth.Anonymous{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sp,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the server root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// messageBody is the envelope the server uses for create/vote results and
// for most errors.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// postJSON performs a POST with a JSON body and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// postMessage performs a POST and returns the server's message.
func (c *Client) postMessage(ctx context.Context, path string, body any) (string, error) {
	var res messageBody
	if err := c.postJSON(ctx, path, body, &res); err != nil {
		return "", err
	}
	return sanitizeText(res.Message), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (err error) {
	requestID := uuid.NewString()
	defer func() {
		if err != nil {
			log.Printf("llmit: %s %s failed (request %s): %v", method, path, requestID, err)
		}
	}()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	session, err := c.session.SessionCookie()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &domain.ServerError{Status: resp.StatusCode}
		var payload messageBody
		if json.Unmarshal(data, &payload) == nil {
			se.Message = sanitizeText(payload.Message)
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedResponse, method, path, err)
	}
	return nil
}
