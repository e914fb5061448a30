package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	s := ComputeStats(fixtureTasks())

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Todo)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 2, s.Count(StatusCompleted))
	assert.InDelta(t, 0.4, s.CompletionRatio(), 1e-9)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.CompletionRatio())
	assert.Zero(t, s.Count(Status("other")))
}
