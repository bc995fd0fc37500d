package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatesEmptySet(t *testing.T) {
	_, ok := Min(nil)
	assert.False(t, ok)
	_, ok = Max(nil)
	assert.False(t, ok)
	_, ok = Mean(nil)
	assert.False(t, ok)
	_, ok = StdDev(nil)
	assert.False(t, ok)
}

func TestAggregates(t *testing.T) {
	xs := []float64{4, 6, 8}

	min, ok := Min(xs)
	assert.True(t, ok)
	assert.Equal(t, 4.0, min)

	max, ok := Max(xs)
	assert.True(t, ok)
	assert.Equal(t, 8.0, max)

	mean, ok := Mean(xs)
	assert.True(t, ok)
	assert.Equal(t, 6.0, mean)
}

func TestStdDevPopulation(t *testing.T) {
	sd, ok := StdDev([]float64{10, 50})
	assert.True(t, ok)
	assert.InDelta(t, 20.0, sd, 1e-9)

	sd, ok = StdDev([]float64{7, 7, 7})
	assert.True(t, ok)
	assert.Zero(t, sd)
}

func TestPositiveDropsZeroAndNegative(t *testing.T) {
	assert.Equal(t, []float64{3, 1.5}, Positive([]float64{3, 0, -2, 1.5}))
	assert.Empty(t, Positive([]float64{0, -1}))
	assert.Empty(t, Positive(nil))
}
