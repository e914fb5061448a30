package mock

import (
	"time"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// FixtureUser is the identity handed out to logins for unregistered usernames
var FixtureUser = domain.User{
	UserID:   "65f1a2b3c4d5e6f7g8h9i0j1",
	Username: "testuser",
	Email:    "admin@taskmanager.com",
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// FixtureTasks returns a fresh copy of the seed tasks
func FixtureTasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "1",
			Title:       "Implement authentication",
			Description: "Build the login flow with JWT and credential validation",
			Status:      domain.StatusCompleted,
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
			UpdatedAt:   ts("2024-01-16T14:30:00Z"),
		},
		{
			ID:          "2",
			Title:       "Design dashboard",
			Description: "Create the dashboard screen with charts and task statistics",
			Status:      domain.StatusInProgress,
			CreatedAt:   ts("2024-01-16T09:00:00Z"),
			UpdatedAt:   ts("2024-01-17T11:20:00Z"),
		},
		{
			ID:          "3",
			Title:       "Set up state management",
			Description: "Introduce a central store for global application state",
			Status:      domain.StatusCompleted,
			CreatedAt:   ts("2024-01-14T08:00:00Z"),
			UpdatedAt:   ts("2024-01-15T09:45:00Z"),
		},
		{
			ID:          "4",
			Title:       "Unit tests",
			Description: "Write unit tests covering the main components and stores",
			Status:      domain.StatusTodo,
			CreatedAt:   ts("2024-01-17T13:00:00Z"),
			UpdatedAt:   ts("2024-01-17T13:00:00Z"),
		},
		{
			ID:          "5",
			Title:       "Form validation",
			Description: "Validate every form field before anything is submitted",
			Status:      domain.StatusCompleted,
			CreatedAt:   ts("2024-01-15T14:00:00Z"),
			UpdatedAt:   ts("2024-01-16T10:15:00Z"),
		},
		{
			ID:          "6",
			Title:       "Responsive layout",
			Description: "Make sure every view adapts to narrow and wide terminals",
			Status:      domain.StatusInProgress,
			CreatedAt:   ts("2024-01-16T15:00:00Z"),
			UpdatedAt:   ts("2024-01-17T12:30:00Z"),
		},
		{
			ID:          "7",
			Title:       "Documentation",
			Description: "Complete the README with install and usage instructions",
			Status:      domain.StatusTodo,
			CreatedAt:   ts("2024-01-17T14:00:00Z"),
			UpdatedAt:   ts("2024-01-17T14:00:00Z"),
		},
		{
			ID:          "8",
			Title:       "Performance tuning",
			Description: "Load data lazily and trim startup work to improve load times",
			Status:      domain.StatusTodo,
			CreatedAt:   ts("2024-01-17T15:00:00Z"),
			UpdatedAt:   ts("2024-01-17T15:00:00Z"),
		},
	}
}
