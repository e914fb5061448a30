package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// APIError is a non-2xx response from the task API. The JSON shape matches
// the server's error body.
type APIError struct {
	Status  int    `json:"status"`
	Err     string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.Status, e.Message)
	}
	if e.Err != "" {
		return fmt.Sprintf("api %d: %s", e.Status, e.Err)
	}
	return fmt.Sprintf("api %d", e.Status)
}

// Is maps status codes onto the sentinel errors
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// NewAPIError builds an APIError with the standard reason phrase
func NewAPIError(status int, message, path string) *APIError {
	return &APIError{
		Status:  status,
		Err:     http.StatusText(status),
		Message: message,
		Path:    path,
	}
}

// TransportError represents a failure to reach the API or decode its reply
type TransportError struct {
	Op  string // Operation: "login", "list", "create", etc.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationErrors maps a field name to its message
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message for one field, or ""
func (v ValidationErrors) Field(name string) string {
	return v[name]
}

// Message extracts the server-provided message from err, falling back to
// the given string when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var vErr ValidationErrors
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return fallback
}
