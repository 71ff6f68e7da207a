package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse indicates the server answered with a body that
	// could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnsafeURL indicates a URL that must not be handed to the browser.
	ErrUnsafeURL = errors.New("unsafe url")
)

// ServerError is a non-2xx response. Message holds the text the server put
// in its JSON body, if any.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// MessageOf returns the server-provided message carried by err, or fallback
// when err carries none.
func MessageOf(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
