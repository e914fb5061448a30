package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "with message",
			err:  APIError{Status: 404, Err: "Not Found", Message: "Task not found"},
			want: "api 404: Task not found",
		},
		{
			name: "reason only",
			err:  APIError{Status: 500, Err: "Internal Server Error"},
			want: "api 500: Internal Server Error",
		},
		{
			name: "minimal",
			err:  APIError{Status: 502},
			want: "api 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	unauthorized := fmt.Errorf("list: %w", NewAPIError(http.StatusUnauthorized, "", "/tasks"))
	if !errors.Is(unauthorized, ErrUnauthorized) {
		t.Error("401 should match ErrUnauthorized through wrapping")
	}
	if errors.Is(unauthorized, ErrNotFound) {
		t.Error("401 should not match ErrNotFound")
	}

	notFound := NewAPIError(http.StatusNotFound, "Task not found", "/tasks/9")
	if !errors.Is(notFound, ErrNotFound) {
		t.Error("404 should match ErrNotFound")
	}

	exists := NewAPIError(http.StatusUnprocessableEntity, "Username already exists", "/auth/register")
	if !errors.Is(exists, ErrConflict) {
		t.Error("422 should match ErrConflict")
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &TransportError{Op: "list", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
	if got := err.Error(); got != "transport list: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", NewAPIError(404, "Task not found", ""), "Task not found"},
		{"wrapped server message", fmt.Errorf("x: %w", NewAPIError(400, "Invalid status", "")), "Invalid status"},
		{"api error without message", NewAPIError(500, "", ""), "fallback"},
		{"network error", &TransportError{Op: "list", Err: errors.New("eof")}, "fallback"},
		{"validation", ValidationErrors{"title": "title is required"}, "validation failed: title: title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, "fallback"); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrors_ErrorIsSorted(t *testing.T) {
	v := ValidationErrors{"title": "a", "description": "b"}
	want := "validation failed: description: b; title: a"
	if got := v.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
