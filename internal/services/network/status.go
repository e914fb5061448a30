// Package network probes whether the task API is reachable so the TUI can
// tell a dead server apart from a rejected request.
package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is how often the TUI re-probes the API
const DefaultInterval = 30 * time.Second

// StatusChecker monitors reachability of one base URL
type StatusChecker struct {
	mu        sync.RWMutex
	url       string
	isOnline  bool
	lastCheck time.Time
	client    *http.Client
}

// StatusMsg is sent when a probe finishes
type StatusMsg struct {
	Online bool
}

// NewStatusChecker creates a checker for url. Probes give up after timeout.
func NewStatusChecker(url string, timeout time.Duration) *StatusChecker {
	return &StatusChecker{
		url:      url,
		isOnline: true, // Optimistically assume online
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

// Check sends a HEAD request to the base URL. Any HTTP response counts as
// online: an API answering 401 or 404 to a bare HEAD is still up.
func (s *StatusChecker) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		s.setOnline(false)
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.setOnline(false)
		return false
	}
	defer resp.Body.Close()

	online := resp.StatusCode < http.StatusInternalServerError
	s.setOnline(online)
	return online
}

// IsOnline returns the cached online status
func (s *StatusChecker) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline
}

// LastCheck returns the time of the last probe
func (s *StatusChecker) LastCheck() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCheck
}

// setOnline updates the cached online status
func (s *StatusChecker) setOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOnline = online
	s.lastCheck = time.Now()
}

// CheckCmd returns a tea.Cmd that performs one probe
func (s *StatusChecker) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Online: s.Check(context.Background())}
	}
}

// PollMsg asks the owner of the checker to run the next probe
type PollMsg struct{}

// PollCmd schedules the next PollMsg
func (s *StatusChecker) PollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return PollMsg{}
	})
}
