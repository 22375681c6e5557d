package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_NowAdvances(t *testing.T) {
	start := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)
	c := NewClock(start, time.Second)

	first := c.Now()
	second := c.Now()

	assert.Equal(t, start, first)
	assert.True(t, second.After(first), "successive Now calls must strictly increase")
	assert.Equal(t, time.Second, second.Sub(first))
}

func TestClock_Advance(t *testing.T) {
	start := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)
	c := NewClock(start, time.Second)

	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())
}
