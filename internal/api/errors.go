package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a rejected or missing credential. Callers route
// the user back to login when they see it.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound marks a missing resource, including expired upload sessions.
var ErrNotFound = errors.New("not found")

// RemoteError is a non-2xx response with the backend's own message.
type RemoteError struct {
	Status  int
	Message string
}

// Error renders the status and any backend-supplied message.
func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors.
func (e *RemoteError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// decodeRemoteError extracts an error message from a failure body.
// The backend is inconsistent about the field name.
func decodeRemoteError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error
		if message == "" {
			message = payload.Message
		}
	}
	return &RemoteError{Status: status, Message: message}
}
