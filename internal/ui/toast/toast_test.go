package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

func toastAt(level types.ToastLevel, msg string) types.Toast {
	return types.NewToast(level, msg, time.Now(), 5*time.Second)
}

func TestToastRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{}, 80)

	assert.Equal(t, "", result, "Empty toast list should return empty string")
}

func TestToastRenderer_Render_SingleToast(t *testing.T) {
	renderer := New(styles.New())

	result := ansi.Strip(renderer.Render([]types.Toast{toastAt(types.ToastInfo, "Task created")}, 80))

	assert.Contains(t, result, "Task created")
	assert.Contains(t, result, "•")
}

func TestToastRenderer_Render_Stacked(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		toastAt(types.ToastInfo, "First toast"),
		toastAt(types.ToastSuccess, "Second toast"),
		toastAt(types.ToastError, "Third toast"),
	}

	result := ansi.Strip(renderer.Render(toasts, 80))
	assert.Contains(t, result, "First toast")
	assert.Contains(t, result, "Second toast")
	assert.Contains(t, result, "Third toast")

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 3, "Multiple toasts should create multiple lines")
}

func TestToastRenderer_Render_KeepsNewest(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		toastAt(types.ToastInfo, "oldest"),
		toastAt(types.ToastInfo, "second"),
		toastAt(types.ToastInfo, "third"),
		toastAt(types.ToastInfo, "newest"),
	}

	result := ansi.Strip(renderer.Render(toasts, 80))
	assert.NotContains(t, result, "oldest")
	assert.Contains(t, result, "newest")
}

func TestToastRenderer_Render_NarrowTerminal(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{toastAt(types.ToastWarning, "narrow")}, 10)
	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), minWidth+2, "border adds two cells")
	}
}

func TestToastRenderer_Render_DifferentLevels(t *testing.T) {
	renderer := New(styles.New())

	tests := []struct {
		name   string
		level  types.ToastLevel
		prefix string
	}{
		{"Info", types.ToastInfo, "•"},
		{"Success", types.ToastSuccess, "✓"},
		{"Warning", types.ToastWarning, "!"},
		{"Error", types.ToastError, "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ansi.Strip(renderer.Render([]types.Toast{toastAt(tt.level, "Test "+tt.name)}, 80))

			assert.Contains(t, result, "Test "+tt.name, "Should contain toast message")
			assert.Contains(t, result, tt.prefix)
		})
	}
}
