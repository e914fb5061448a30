package domain

import "strings"

// StatusFilter selects a single status or all of them
type StatusFilter string

// StatusAll matches every status
const StatusAll StatusFilter = "ALL"

// statusCycle is the order the filter control steps through
var statusCycle = []StatusFilter{
	StatusAll,
	StatusFilter(StatusTodo),
	StatusFilter(StatusInProgress),
	StatusFilter(StatusCompleted),
}

// Next returns the following selector in the cycle
func (f StatusFilter) Next() StatusFilter {
	for i, s := range statusCycle {
		if s == f {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusAll
}

// Label returns the display string
func (f StatusFilter) Label() string {
	if f == StatusAll || f == "" {
		return "All"
	}
	return Status(f).Label()
}

// ParseStatusFilter accepts "all" or anything ParseStatus accepts
func ParseStatusFilter(s string) (StatusFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") || strings.TrimSpace(s) == "" {
		return StatusAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(st), nil
}

// Filter represents task filtering state
type Filter struct {
	Status StatusFilter
	Search string
}

// NewFilter creates a filter that matches everything
func NewFilter() Filter {
	return Filter{Status: StatusAll}
}

// IsActive returns true if the filter hides anything
func (f Filter) IsActive() bool {
	return (f.Status != StatusAll && f.Status != "") || f.Search != ""
}

// Matches returns true if the task passes both the status and search criteria
func (f Filter) Matches(t Task) bool {
	if f.Status != StatusAll && f.Status != "" && Status(f.Status) != t.Status {
		return false
	}

	// Search query (case-insensitive, title only)
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
			return false
		}
	}

	return true
}

// Apply returns the matching subsequence of tasks, preserving order. The
// input slice is never modified.
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// ByStatus partitions tasks into board columns, keeping list order within each
func ByStatus(tasks []Task) map[Status][]Task {
	cols := make(map[Status][]Task, len(Statuses))
	for _, s := range Statuses {
		cols[s] = []Task{}
	}
	for _, t := range tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}
	return cols
}
