package domain

// Stats summarizes a task list for the dashboard
type Stats struct {
	Total      int
	Todo       int
	InProgress int
	Completed  int
}

// ComputeStats counts tasks per status
func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusTodo:
			s.Todo++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
	}
	return s
}

// Count returns the number of tasks with the given status
func (s Stats) Count(status Status) int {
	switch status {
	case StatusTodo:
		return s.Todo
	case StatusInProgress:
		return s.InProgress
	case StatusCompleted:
		return s.Completed
	}
	return 0
}

// CompletionRatio is completed/total, 0 for an empty list
func (s Stats) CompletionRatio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
