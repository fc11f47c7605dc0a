package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantView(value float32, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = value
	}
	return v
}

func TestSkipHighSpeedNoFollowUpCopy(t *testing.T) {
	period := 100
	view := constantView(1, 2*period)
	out, advance, remaining := Skip(view, period, 3.0)

	assert.Equal(t, period/2, len(out)) // period/(speed-1) = 100/2
	assert.Equal(t, 0, remaining)
	assert.Equal(t, period+len(out), advance)
	for _, v := range out {
		assert.InDelta(t, 1.0, v, 1e-6)
	}
}

func TestSkipLowSpeedSetsFollowUpCopy(t *testing.T) {
	period := 100
	view := constantView(0.5, 2*period)
	out, advance, remaining := Skip(view, period, 1.5)

	assert.Equal(t, period, len(out))
	assert.Greater(t, remaining, 0)
	assert.Equal(t, period+len(out), advance)
}

func TestSkipCrossFadeIsLinearBlend(t *testing.T) {
	period := 4
	view := make([]float32, 2*period)
	for i := 0; i < period; i++ {
		view[i] = 0
		view[i+period] = 10
	}
	out, _, _ := Skip(view, period, 2.0) // newSamples = period/(speed-1) = 4
	require.Len(t, out, 4)
	// out[t] = (0*(n-t) + 10*t)/n
	for idx, v := range out {
		expected := float32(10*idx) / float32(len(out))
		assert.InDelta(t, expected, v, 1e-5)
	}
}

func TestInsertHighSpeedVerbatimThenFade(t *testing.T) {
	period := 50
	view := constantView(0.25, 2*period)
	out, advance, remaining := Insert(view, period, 0.75)

	assert.Equal(t, period+period, len(out)) // newSamples == period when speed >= 0.5
	assert.Equal(t, period, advance)
	assert.Greater(t, remaining, 0)
	for _, v := range out[:period] {
		assert.InDelta(t, 0.25, v, 1e-6)
	}
}

func TestInsertExtremeSpeedClampsNewSamplesToOne(t *testing.T) {
	period := 1000
	view := constantView(0, 2*period)
	out, advance, remaining := Insert(view, period, 0.0005) // raw newSamples = int(0.50025) = 0

	assert.Equal(t, 0, remaining)
	assert.GreaterOrEqual(t, advance, minNewSamples)
	assert.Equal(t, period+advance, len(out))
}
