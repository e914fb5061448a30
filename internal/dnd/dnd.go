// Package dnd recognises drag gestures on the board and turns a drop into
// at most one status change. It knows nothing about rendering; callers
// translate pointer events and hit-test results into Press, Move and
// Release.
package dnd

import (
	"math"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// DefaultThreshold is the pointer distance, in cells, that turns a press
// into a drag
const DefaultThreshold = 8

// Phase of the gesture
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Point is a terminal cell position
type Point struct {
	X, Y int
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// TargetKind says what lies under the pointer at drop time
type TargetKind int

const (
	NoTarget TargetKind = iota
	ColumnTarget
	CardTarget
)

// Target is a hit-test result
type Target struct {
	Kind TargetKind
	// Status is the column's status, or the card's current status
	Status domain.Status
	// TaskID is set for card targets
	TaskID string
}

// Resolve picks the status a drop onto t assigns. Columns win over cards;
// anything else resolves to nothing.
func (t Target) Resolve() (domain.Status, bool) {
	switch t.Kind {
	case ColumnTarget, CardTarget:
		if t.Status.Valid() {
			return t.Status, true
		}
	}
	return "", false
}

// Drop is the outcome of releasing a press or drag
type Drop struct {
	TaskID string
	From   domain.Status
	To     domain.Status
	// Click is set when the pointer was released before the drag activated
	Click bool
}

// Changed reports whether the drop should issue a status update
func (d Drop) Changed() bool {
	return !d.Click && d.TaskID != "" && d.To.Valid() && d.To != d.From
}

// Machine tracks one gesture at a time
type Machine struct {
	threshold float64

	phase  Phase
	taskID string
	from   domain.Status
	origin Point
	pos    Point
}

// New creates an idle machine. A threshold of zero or less uses
// DefaultThreshold.
func New(threshold int) *Machine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Machine{threshold: float64(threshold)}
}

// Press arms a drag for the card under the pointer. It is ignored while
// another gesture is in progress.
func (m *Machine) Press(taskID string, status domain.Status, at Point) bool {
	if m.phase != Idle || taskID == "" {
		return false
	}
	m.phase = Pressed
	m.taskID = taskID
	m.from = status
	m.origin = at
	m.pos = at
	return true
}

// Pickup starts a drag immediately, as the keyboard does
func (m *Machine) Pickup(taskID string, status domain.Status) bool {
	if m.phase != Idle || taskID == "" {
		return false
	}
	m.phase = Dragging
	m.taskID = taskID
	m.from = status
	return true
}

// Move records pointer motion. It reports whether the drag activated on
// this move.
func (m *Machine) Move(at Point) bool {
	m.pos = at
	if m.phase != Pressed {
		return false
	}
	if at.distance(m.origin) >= m.threshold {
		m.phase = Dragging
		return true
	}
	return false
}

// Release ends the gesture over target. The machine is idle afterwards.
func (m *Machine) Release(target Target) Drop {
	defer m.reset()

	switch m.phase {
	case Pressed:
		return Drop{TaskID: m.taskID, From: m.from, To: m.from, Click: true}
	case Dragging:
		drop := Drop{TaskID: m.taskID, From: m.from, To: m.from}
		if to, ok := target.Resolve(); ok {
			drop.To = to
		}
		return drop
	}
	return Drop{}
}

// Cancel abandons the gesture
func (m *Machine) Cancel() {
	m.reset()
}

func (m *Machine) reset() {
	m.phase = Idle
	m.taskID = ""
	m.from = ""
	m.origin = Point{}
}

// Phase returns the current phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Dragging reports whether a drag is active
func (m *Machine) Dragging() bool {
	return m.phase == Dragging
}

// Active returns the task being pressed or dragged
func (m *Machine) Active() (string, bool) {
	if m.phase == Idle {
		return "", false
	}
	return m.taskID, true
}

// Position is the last pointer position seen
func (m *Machine) Position() Point {
	return m.pos
}
