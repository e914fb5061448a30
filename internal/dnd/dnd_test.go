package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func column(s domain.Status) Target {
	return Target{Kind: ColumnTarget, Status: s}
}

func TestMachine_ThresholdActivation(t *testing.T) {
	tests := []struct {
		name       string
		moves      []Point
		wantActive bool
	}{
		{"no movement", nil, false},
		{"short horizontal", []Point{{X: 7, Y: 0}}, false},
		{"exact threshold", []Point{{X: 8, Y: 0}}, true},
		{"diagonal under threshold", []Point{{X: 5, Y: 5}}, false},
		{"diagonal over threshold", []Point{{X: 6, Y: 6}}, true},
		{"wanders back", []Point{{X: 3, Y: 0}, {X: 0, Y: 0}}, false},
		{"gradual", []Point{{X: 2, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(DefaultThreshold)
			require.True(t, m.Press("1", domain.StatusTodo, Point{}))
			for _, p := range tt.moves {
				m.Move(p)
			}
			assert.Equal(t, tt.wantActive, m.Dragging())
		})
	}
}

func TestMachine_ClickDoesNotChange(t *testing.T) {
	m := New(8)
	m.Press("1", domain.StatusTodo, Point{X: 10, Y: 10})
	m.Move(Point{X: 12, Y: 10})

	drop := m.Release(column(domain.StatusCompleted))
	assert.True(t, drop.Click)
	assert.False(t, drop.Changed())
	assert.Equal(t, Idle, m.Phase())
}

func TestMachine_DropResolution(t *testing.T) {
	tests := []struct {
		name        string
		target      Target
		wantTo      domain.Status
		wantChanged bool
	}{
		{"own column", column(domain.StatusTodo), domain.StatusTodo, false},
		{"other column", column(domain.StatusInProgress), domain.StatusInProgress, true},
		{"card in other column", Target{Kind: CardTarget, Status: domain.StatusCompleted, TaskID: "2"}, domain.StatusCompleted, true},
		{"card in own column", Target{Kind: CardTarget, Status: domain.StatusTodo, TaskID: "3"}, domain.StatusTodo, false},
		{"nowhere", Target{}, domain.StatusTodo, false},
		{"column with bad status", Target{Kind: ColumnTarget, Status: "NOPE"}, domain.StatusTodo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(8)
			m.Press("1", domain.StatusTodo, Point{})
			m.Move(Point{X: 20, Y: 0})
			require.True(t, m.Dragging())

			drop := m.Release(tt.target)
			assert.Equal(t, "1", drop.TaskID)
			assert.Equal(t, tt.wantTo, drop.To)
			assert.Equal(t, tt.wantChanged, drop.Changed())
			assert.False(t, drop.Click)
			assert.Equal(t, Idle, m.Phase(), "state cleared on drop")
		})
	}
}

func TestMachine_OneGestureAtATime(t *testing.T) {
	m := New(8)
	require.True(t, m.Pickup("1", domain.StatusTodo))

	assert.False(t, m.Press("2", domain.StatusTodo, Point{}))
	assert.False(t, m.Pickup("2", domain.StatusTodo))

	id, ok := m.Active()
	assert.True(t, ok)
	assert.Equal(t, "1", id)
}

func TestMachine_Cancel(t *testing.T) {
	m := New(8)
	m.Pickup("1", domain.StatusTodo)
	m.Cancel()

	assert.Equal(t, Idle, m.Phase())
	_, ok := m.Active()
	assert.False(t, ok)

	drop := m.Release(column(domain.StatusCompleted))
	assert.False(t, drop.Changed(), "release after cancel does nothing")
}

func TestMachine_KeyboardPickupSkipsThreshold(t *testing.T) {
	m := New(8)
	m.Pickup("1", domain.StatusInProgress)
	assert.True(t, m.Dragging())

	drop := m.Release(column(domain.StatusCompleted))
	assert.True(t, drop.Changed())
	assert.Equal(t, domain.StatusInProgress, drop.From)
}

func TestNew_DefaultThreshold(t *testing.T) {
	m := New(0)
	m.Press("1", domain.StatusTodo, Point{})
	m.Move(Point{X: 7})
	assert.False(t, m.Dragging())
	m.Move(Point{X: 8})
	assert.True(t, m.Dragging())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "dragging", Dragging.String())
}
