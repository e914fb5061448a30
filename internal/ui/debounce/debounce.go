// Package debounce coalesces rapid input changes into one update delivered
// after the input has been quiet for a delay.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is used when a debouncer is created with a zero delay
const DefaultDelay = 300 * time.Millisecond

// Msg is delivered when a debounce timer fires. Only the message for the
// latest Trigger is accepted.
type Msg struct {
	ID    int
	Gen   uint64
	Value string
}

// Debouncer tracks the latest pending value for one input
type Debouncer struct {
	id      int
	delay   time.Duration
	gen     uint64
	pending string
	armed   bool
}

// New creates a debouncer. The id distinguishes debouncers sharing a model.
func New(id int, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{id: id, delay: delay}
}

// Trigger records value and schedules its delivery, superseding any
// earlier pending value
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.gen++
	d.pending = value
	d.armed = true

	id, gen := d.id, d.gen
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{ID: id, Gen: gen, Value: value}
	})
}

// Accept reports whether msg is the current delivery for this debouncer
func (d *Debouncer) Accept(msg Msg) (string, bool) {
	if msg.ID != d.id || msg.Gen != d.gen || !d.armed {
		return "", false
	}
	d.armed = false
	return msg.Value, true
}

// Flush returns the pending value immediately; timers already running are
// ignored when they fire
func (d *Debouncer) Flush() (string, bool) {
	if !d.armed {
		return "", false
	}
	d.gen++
	d.armed = false
	return d.pending, true
}

// Cancel drops the pending value
func (d *Debouncer) Cancel() {
	d.gen++
	d.armed = false
	d.pending = ""
}

// Pending reports whether a value is waiting for delivery
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Gen is the generation of the latest Trigger
func (d *Debouncer) Gen() uint64 {
	return d.gen
}

// ID returns the id messages from this debouncer carry
func (d *Debouncer) ID() int {
	return d.id
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
