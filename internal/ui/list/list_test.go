package list

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func createTestTasks(n int) []domain.Task {
	statuses := domain.Statuses
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{
			ID:        fmt.Sprintf("t-%d", i+1),
			Title:     fmt.Sprintf("Task number %d", i+1),
			Status:    statuses[i%len(statuses)],
			UpdatedAt: time.Date(2024, 1, 10+i, 12, 0, 0, 0, time.UTC),
		}
	}
	return tasks
}

func TestSetCursor(t *testing.T) {
	lv := NewListView(createTestTasks(5), 80, 20)

	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"Normal position", 2, 2},
		{"Negative position", -1, 0},
		{"Beyond end", 10, 4},
		{"At end", 4, 4},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv.SetCursor(tt.index)
			assert.Equal(t, tt.expected, lv.Cursor())
		})
	}

	empty := NewListView(nil, 80, 20)
	empty.SetCursor(3)
	assert.Equal(t, 0, empty.Cursor())
}

func TestRenderEmpty(t *testing.T) {
	lv := NewListView(nil, 80, 20)
	assert.Contains(t, ansi.Strip(lv.Render()), "No tasks to display")

	lv.SetEmptyMessage("No tasks match the filter")
	assert.Contains(t, ansi.Strip(lv.Render()), "No tasks match the filter")
}

func TestRenderWithTasks(t *testing.T) {
	tasks := createTestTasks(3)
	output := ansi.Strip(NewListView(tasks, 80, 20).Render())

	for _, header := range []string{"#", "ID", "Title", "Status", "Updated"} {
		assert.Contains(t, output, header)
	}
	assert.Contains(t, output, "─")
	for _, task := range tasks {
		assert.Contains(t, output, task.ID)
		assert.Contains(t, output, task.Title)
		assert.Contains(t, output, task.Status.Label())
	}

	lines := strings.Split(output, "\n")
	require.Len(t, lines, HeaderRows+3)
	for _, line := range lines[HeaderRows:] {
		assert.Equal(t, 80, ansi.StringWidth(line), "rows fill the width")
	}
}

func TestRenderCursor(t *testing.T) {
	lv := NewListView(createTestTasks(3), 80, 20)
	lv.SetCursor(1)
	lines := strings.Split(ansi.Strip(lv.Render()), "\n")

	assert.Equal(t, 1, strings.Count(strings.Join(lines, "\n"), "▶"))
	assert.Contains(t, lines[HeaderRows+1], "▶")
	assert.Contains(t, lines[HeaderRows+1], "t-2")
}

func TestRenderTruncatesTitle(t *testing.T) {
	tasks := []domain.Task{{ID: "1", Title: strings.Repeat("long ", 40), Status: domain.StatusTodo}}
	output := ansi.Strip(NewListView(tasks, 60, 10).Render())

	assert.Contains(t, output, "…")
	for _, line := range strings.Split(output, "\n")[HeaderRows:] {
		assert.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	lv := NewListView(createTestTasks(20), 80, 7) // 5 rows below the header
	lv.SetCursor(12)
	output := ansi.Strip(lv.Render())

	assert.Contains(t, output, "t-13")
	assert.NotContains(t, output, "t-1 ")
	assert.Len(t, strings.Split(output, "\n"), 7)
}

func TestRowAt(t *testing.T) {
	lv := NewListView(createTestTasks(3), 80, 10)

	assert.Equal(t, -1, lv.RowAt(0), "header")
	assert.Equal(t, -1, lv.RowAt(1), "separator")
	assert.Equal(t, 0, lv.RowAt(2))
	assert.Equal(t, 2, lv.RowAt(4))
	assert.Equal(t, -1, lv.RowAt(5), "below the last row")

	scrolled := NewListView(createTestTasks(20), 80, 7)
	scrolled.SetCursor(12)
	assert.Equal(t, 8, scrolled.RowAt(2), "first visible row after scrolling")
}
