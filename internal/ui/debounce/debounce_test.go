package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_LatestWins(t *testing.T) {
	d := New(1, time.Millisecond)

	first := d.Trigger("a")
	second := d.Trigger("ab")
	third := d.Trigger("abc")
	require.NotNil(t, first)
	require.NotNil(t, second)

	// Fire the older timers; they must be ignored
	_, ok := d.Accept(first().(Msg))
	assert.False(t, ok)
	_, ok = d.Accept(second().(Msg))
	assert.False(t, ok)

	v, ok := d.Accept(third().(Msg))
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = d.Accept(third().(Msg))
	assert.False(t, ok, "delivered once")
}

func TestDebouncer_FlushSupersedesTimer(t *testing.T) {
	d := New(1, time.Millisecond)
	cmd := d.Trigger("query")

	v, ok := d.Flush()
	assert.True(t, ok)
	assert.Equal(t, "query", v)
	assert.False(t, d.Pending())

	_, ok = d.Accept(cmd().(Msg))
	assert.False(t, ok, "timer after flush is stale")

	_, ok = d.Flush()
	assert.False(t, ok, "nothing left to flush")
}

func TestDebouncer_Cancel(t *testing.T) {
	d := New(1, time.Millisecond)
	cmd := d.Trigger("x")
	d.Cancel()

	_, ok := d.Accept(cmd().(Msg))
	assert.False(t, ok)
	assert.False(t, d.Pending())
}

func TestDebouncer_IgnoresOtherIDs(t *testing.T) {
	a := New(1, time.Millisecond)
	b := New(2, time.Millisecond)

	cmd := a.Trigger("x")
	b.Trigger("y")

	_, ok := b.Accept(cmd().(Msg))
	assert.False(t, ok)
}

func TestNew_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(1, 0).Delay())
	assert.Equal(t, 50*time.Millisecond, New(1, 50*time.Millisecond).Delay())
}
