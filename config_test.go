package speedshift

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateFillsDefaults(t *testing.T) {
	cfg := Config{Speed: 1.5, SampleRate: 44100}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, MinPitchHz, cfg.MinPitchHz)
	assert.Equal(t, MaxPitchHz, cfg.MaxPitchHz)
	assert.Equal(t, AMDFFrequency, cfg.AMDFFrequency)
	assert.Equal(t, AMDFRange, cfg.AMDFRange)
}

func TestConfigValidateRejectsNonPositiveSpeed(t *testing.T) {
	cfg := Config{Speed: 0, SampleRate: 44100}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigValidateRejectsNonPositiveSampleRate(t *testing.T) {
	cfg := Config{Speed: 1.0, SampleRate: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigValidateRejectsInvertedPitchBounds(t *testing.T) {
	cfg := Config{Speed: 1.2, SampleRate: 44100, MinPitchHz: 500, MaxPitchHz: 100}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigValidateRejectsOutOfRangeAMDFRange(t *testing.T) {
	cfg := Config{Speed: 1.2, SampleRate: 44100, AMDFRange: 1.0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigValidateRejectsNegativeMaxInputHint(t *testing.T) {
	cfg := Config{Speed: 1.2, SampleRate: 44100, MaxInputHint: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
