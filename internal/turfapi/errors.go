package turfapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx answer from the backend. Message holds the
// backend's own description when the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// backendError pulls the message out of the backend's error envelope,
// falling back to the raw body when it is not the JSON we expect.
func backendError(status int, body []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &APIError{Status: status, Message: envelope.Message}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
