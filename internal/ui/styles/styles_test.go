package styles

import (
	"testing"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStatusBadge(t *testing.T) {
	s := New()

	for _, status := range append(domain.Statuses, domain.Status("UNKNOWN")) {
		t.Run(string(status), func(t *testing.T) {
			rendered := s.StatusBadge(status).Render(status.Label())
			if len(rendered) == 0 {
				t.Error("StatusBadge rendered empty string")
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	if StatusColor(domain.StatusTodo) != Blue {
		t.Errorf("TODO should be blue")
	}
	if StatusColor(domain.StatusCompleted) != Green {
		t.Errorf("COMPLETED should be green")
	}
	if StatusColor("NOPE") != Overlay1 {
		t.Errorf("unknown status should fall back to Overlay1")
	}
}

func TestThemeColors(t *testing.T) {
	// Verify colors are defined
	colors := []struct {
		name  string
		color string
	}{
		{"Base", string(Base)},
		{"Blue", string(Blue)},
		{"Red", string(Red)},
		{"Green", string(Green)},
		{"Yellow", string(Yellow)},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			if c.color == "" {
				t.Errorf("%s color is empty", c.name)
			}
			// Catppuccin colors start with #
			if c.color[0] != '#' {
				t.Errorf("%s color doesn't start with #: %s", c.name, c.color)
			}
		})
	}
}
