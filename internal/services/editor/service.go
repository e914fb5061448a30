// Package editor provides input mode and filter state management
package editor

import (
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeDrag   = types.ModeDrag
	ModeSearch = types.ModeSearch
)

// Service manages editing state (mode and filter)
type Service struct {
	mode   Mode
	filter domain.Filter
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		mode:   ModeNormal,
		filter: domain.NewFilter(),
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// SetMode sets the current mode
func (s *Service) SetMode(mode Mode) {
	s.mode = mode
}

// EnterNormal switches to normal mode
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
}

// EnterDrag switches to drag mode
func (s *Service) EnterDrag() {
	s.mode = ModeDrag
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsDrag returns true if in drag mode
func (s *Service) IsDrag() bool {
	return s.mode == ModeDrag
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() domain.Filter {
	return s.filter
}

// SetFilter sets the filter
func (s *Service) SetFilter(filter domain.Filter) {
	s.filter = filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.Search = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.Search = ""
}

// SetStatusFilter selects a single status, or StatusAll
func (s *Service) SetStatusFilter(status domain.StatusFilter) {
	s.filter.Status = status
}

// CycleStatusFilter steps All, To Do, In Progress, Completed and back
func (s *Service) CycleStatusFilter() domain.StatusFilter {
	s.filter.Status = s.filter.Status.Next()
	return s.filter.Status
}

// ClearFilters resets filter to default
func (s *Service) ClearFilters() {
	s.filter = domain.NewFilter()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// ApplyFilter returns the visible subset of tasks in store order
func (s *Service) ApplyFilter(tasks []domain.Task) []domain.Task {
	return s.filter.Apply(tasks)
}
