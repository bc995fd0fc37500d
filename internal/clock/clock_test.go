package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	c := RealClock{}
	before := time.Now()
	now := c.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	base := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	m := NewMockClock(base)

	assert.Equal(t, base, m.Now())

	m.Advance(90 * time.Minute)
	assert.Equal(t, base.Add(90*time.Minute), m.Now())

	reset := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	m.Set(reset)
	assert.Equal(t, reset, m.Now())
}
