package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a non-success HTTP status. It wraps [ErrNotFound]
// for 404 and [ErrNetwork] otherwise.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string { return fmt.Sprintf("%v: status %d", e.Err, e.StatusCode) }
func (e *StatusError) Unwrap() error { return e.Err }

// IsStatus reports whether err carries a [StatusError], i.e. the server
// answered with a non-success status rather than failing at transport level.
func IsStatus(err error) bool {
	return errors.As(err, new(*StatusError))
}

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
