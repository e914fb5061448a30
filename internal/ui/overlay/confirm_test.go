package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDialog_Defaults(t *testing.T) {
	d := NewConfirmDialog("Delete task", "Delete \"Write README\"?", "42")

	assert.Equal(t, "Delete task", d.Title())
	assert.False(t, d.Selected(), "defaults to No")

	width, height := d.Size()
	assert.Equal(t, confirmWidth, width)
	assert.GreaterOrEqual(t, height, 8)

	view := ansi.Strip(d.View())
	assert.Contains(t, view, "Write README")
	assert.Contains(t, view, "[Y] Yes")
	assert.Contains(t, view, "[N] No")
}

func TestConfirmDialog_Answers(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"y", []string{"y"}, true},
		{"Y", []string{"Y"}, true},
		{"n", []string{"n"}, false},
		{"esc", []string{"esc"}, false},
		{"enter defaults to no", []string{"enter"}, false},
		{"switch then enter", []string{"right", "enter"}, true},
		{"switch back then enter", []string{"tab", "left", "enter"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog("Delete", "Sure?", "42")
			msgs := collect(press(d, tt.keys...))

			sel, ok := find[SelectionMsg](msgs)
			require.True(t, ok)
			result, ok := sel.Value.(ConfirmResult)
			require.True(t, ok)
			assert.Equal(t, tt.want, result.Confirmed)
			assert.Equal(t, "42", result.Subject)
			assert.True(t, hasClose(msgs), "dialog closes itself")
		})
	}
}

func TestConfirmDialog_IgnoresOtherKeys(t *testing.T) {
	d := NewConfirmDialog("Delete", "Sure?", "1")
	_, cmd := d.Update(key("x"))
	assert.Nil(t, cmd)
}
