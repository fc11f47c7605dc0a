package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineWave(freqHz float64, sampleRate, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freqHz * float64(i) / float64(sampleRate)))
	}
	return out
}

func TestDetectorBoundsDerivedFromPitchHz(t *testing.T) {
	d := NewDetector(16000, DefaultMinPitchHz, DefaultMaxPitchHz, DefaultAMDFFrequency, DefaultAMDFRange)
	assert.Equal(t, 16000/DefaultMaxPitchHz, d.MinPeriod())
	assert.Equal(t, 16000/DefaultMinPitchHz, d.MaxPeriod())
	assert.Equal(t, 2*d.MaxPeriod(), d.MaxRequired())
}

func TestDetectorFindsKnownSinePeriod(t *testing.T) {
	const sampleRate = 16000
	const freq = 200.0 // within [65,400] Hz
	d := NewDetector(sampleRate, DefaultMinPitchHz, DefaultMaxPitchHz, DefaultAMDFFrequency, DefaultAMDFRange)

	samples := sineWave(freq, sampleRate, d.MaxRequired()+sampleRate)
	period := d.Find(samples)

	expected := sampleRate / freq
	assert.InDelta(t, expected, period, 2, "detected period should be close to %f samples", expected)
}

func TestAmdfInRangeTieBreakPrefersFirstCandidate(t *testing.T) {
	// A perfectly periodic signal with period 10 should tie at every
	// multiple of 10 within range; the first candidate wins.
	samples := make([]float32, 400)
	for i := range samples {
		samples[i] = float32(i % 10)
	}
	period := amdfInRange(samples, 5, 39, 1)
	assert.Equal(t, 10, period)
}

func TestAmdfInRangeRequiresSufficientSamples(t *testing.T) {
	samples := make([]float32, 100)
	require.NotPanics(t, func() {
		amdfInRange(samples, 5, 49, 1)
	})
}
