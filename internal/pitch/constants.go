package pitch

// Default tunables, matching sonic.c's SONIC_MIN_PITCH/SONIC_MAX_PITCH/
// SONIC_AMDF_FREQ/SONIC_AMDF_RANGE.
const (
	// DefaultMinPitchHz and DefaultMaxPitchHz bound the human-voice pitch
	// range the estimator targets.
	DefaultMinPitchHz = 65
	DefaultMaxPitchHz = 400

	// DefaultAMDFFrequency is the target sample rate after decimation for
	// the coarse AMDF pass.
	DefaultAMDFFrequency = 4000

	// DefaultAMDFRange is the fine-search half-width, as a fraction of the
	// coarse period.
	DefaultAMDFRange = 0.1
)
