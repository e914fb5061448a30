package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusChecker(t *testing.T) {
	checker := NewStatusChecker("http://localhost", time.Second)
	require.NotNil(t, checker)
	assert.True(t, checker.IsOnline(), "should be optimistically online initially")
	assert.True(t, checker.LastCheck().IsZero())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"ok", http.StatusOK, true},
		{"unauthorized is still reachable", http.StatusUnauthorized, true},
		{"not found is still reachable", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, false},
		{"bad gateway", http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodHead, r.Method)
				assert.Equal(t, "/api", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			checker := NewStatusChecker(server.URL+"/api", time.Second)
			assert.Equal(t, tt.want, checker.Check(context.Background()))
			assert.Equal(t, tt.want, checker.IsOnline())
			assert.False(t, checker.LastCheck().IsZero())
		})
	}
}

func TestCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	checker := NewStatusChecker(url, time.Second)
	assert.False(t, checker.Check(context.Background()))
	assert.False(t, checker.IsOnline())
}

func TestCheck_BadURL(t *testing.T) {
	checker := NewStatusChecker("://nope", time.Second)
	assert.False(t, checker.Check(context.Background()))
}

func TestCheckCmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	msg := NewStatusChecker(server.URL, time.Second).CheckCmd()()

	status, ok := msg.(StatusMsg)
	require.True(t, ok, "should return StatusMsg")
	assert.True(t, status.Online)
}

func TestConcurrentAccess(t *testing.T) {
	checker := NewStatusChecker("http://localhost", time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 100 {
			checker.setOnline(i%2 == 0)
		}
	}()
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = checker.IsOnline()
				_ = checker.LastCheck()
			}
		}()
	}
	wg.Wait()
}
