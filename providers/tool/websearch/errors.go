package websearch

import (
	"fmt"
	"time"
)

// The operations share one set of error variants so callers can branch with
// errors.As instead of matching on message text.

// MissingParameterError reports a required argument that was absent for the
// requested action.
type MissingParameterError struct {
	Param  string
	Action string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is required for %s action", e.Param, e.Action)
}

// InvalidURLError reports a fetch URL that did not parse into a scheme and
// host. It is returned before any network activity.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %s", e.URL)
}

// UnknownActionError reports an action value outside {search, fetch}. With a
// schema-validated input this path is unreachable; it exists to keep the
// dispatcher total.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}

// TimeoutError reports a request that exceeded the configured per-call
// ceiling. Timeout carries the configured value, not the elapsed time.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s request timed out after %ds", e.Op, int(e.Timeout.Seconds()))
}

// StatusError reports a non-2xx response from the remote server.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed: HTTP %d", e.Op, e.Code)
}

// NetworkError reports a transport-level failure: DNS resolution, connection
// refused, TLS problems, or a broken body read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse search results: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
