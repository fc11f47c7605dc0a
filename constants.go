package speedshift

import "github.com/arwynfr/go-speedshift/internal/pitch"

// Default pitch-detection tunables, exposed so callers can see (and, via
// Config, override) the values the estimator uses when a Config leaves
// them at zero. These match sonic.c's SONIC_MIN_PITCH/SONIC_MAX_PITCH/
// SONIC_AMDF_FREQ/SONIC_AMDF_RANGE.
const (
	// MinPitchHz is the lowest pitch frequency the estimator searches for.
	MinPitchHz = pitch.DefaultMinPitchHz

	// MaxPitchHz is the highest pitch frequency the estimator searches for.
	MaxPitchHz = pitch.DefaultMaxPitchHz

	// AMDFFrequency is the target decimated sample rate for the coarse
	// AMDF pass.
	AMDFFrequency = pitch.DefaultAMDFFrequency

	// AMDFRange is the fine-search half-width, as a fraction of the coarse
	// period estimate.
	AMDFRange = pitch.DefaultAMDFRange
)

// unitSpeedEpsilon bounds how close speed must be to 1.0 before the stream
// takes the unmodified passthrough fast path.
const unitSpeedEpsilon = 1e-6

// defaultMaxInputHint is the zero value of Config.MaxInputHint: queues start
// empty and grow as needed. New passes cfg.MaxInputHint through directly and
// does not read this constant.
const defaultMaxInputHint = 0
