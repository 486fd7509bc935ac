package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means no response reached us: the server is down or
	// unreachable.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches any 401 answer.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionExpired matches a 401 on an authenticated call that already
	// cleared the session and reset navigation. Callers should not report it
	// again.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotFound matches a 404 answer.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Detail  string

	// SessionExpired is set when the 401 interceptor logged the user out.
	SessionExpired bool
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, msg, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, msg)
}

// Is lets callers use errors.Is with the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrSessionExpired:
		return e.SessionExpired
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// ServerMessage returns the server-supplied message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
