package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildThresholdsDescendingIncludesOnePastBound(t *testing.T) {
	hs, err := BuildThresholds(1100, 695, -25)
	require.NoError(t, err)

	// 1100 down to 700 in -25 steps, then 675 (first value below 695).
	require.Len(t, hs, 18)
	assert.Equal(t, 1100.0, hs[0])
	assert.Equal(t, 700.0, hs[len(hs)-2])
	assert.Equal(t, 675.0, hs[len(hs)-1])

	for i := 1; i < len(hs); i++ {
		assert.Less(t, hs[i], hs[i-1])
	}
}

func TestBuildThresholdsDescendingExactBound(t *testing.T) {
	// End falls exactly on a step: sequence still runs one step past it.
	hs, err := BuildThresholds(100, 50, -25)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 75, 50, 25}, hs)
}

func TestBuildThresholdsAscending(t *testing.T) {
	hs, err := BuildThresholds(695, 800, 25)
	require.NoError(t, err)

	assert.Equal(t, 695.0, hs[0])
	last := hs[len(hs)-1]
	assert.Greater(t, last, 800.0)
	assert.Equal(t, 820.0, last)
}

func TestBuildThresholdsZeroStep(t *testing.T) {
	_, err := BuildThresholds(1100, 695, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestBuildThresholdsStartBeyondEnd(t *testing.T) {
	// First candidate already past the bound: emit start plus one step.
	hs, err := BuildThresholds(600, 695, -25)
	require.NoError(t, err)
	assert.Equal(t, []float64{600, 575}, hs)
}
