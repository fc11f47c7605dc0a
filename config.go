package speedshift

import (
	"fmt"

	"github.com/arwynfr/go-speedshift/internal/queue"
)

// Config configures a Stream. The zero value is not valid; construct with
// reasonable defaults and override only what you need, then call Validate
// (New calls it for you).
type Config struct {
	// Speed is the playback speed multiplier. 1.0 is a passthrough, >1
	// speeds up (time-compresses), <1 slows down (time-expands). Must be
	// strictly positive.
	Speed float64

	// SampleRate is the input/output sample rate in Hz.
	SampleRate int

	// MinPitchHz and MaxPitchHz bound the pitch-period search range. Zero
	// means use the package defaults (MinPitchHz, MaxPitchHz).
	MinPitchHz int
	MaxPitchHz int

	// AMDFFrequency and AMDFRange tune the pitch estimator's coarse/fine
	// search. Zero means use the package defaults.
	AMDFFrequency int
	AMDFRange     float64

	// MaxInputHint preallocates the initial capacity of both the input and
	// output queues, in samples, as a hint to avoid early regrowth. Zero is a valid hint
	// (start empty and grow on demand).
	MaxInputHint int

	// allocator overrides sample-buffer allocation, used by tests to
	// inject deterministic allocation failure. Unexported: production
	// callers have no legitimate reason to fail their own allocations.
	allocator queue.Allocator
}

// Validate reports whether c describes a usable Stream, filling in
// zero-valued tunables with package defaults.
func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.MinPitchHz == 0 {
		c.MinPitchHz = MinPitchHz
	}
	if c.MaxPitchHz == 0 {
		c.MaxPitchHz = MaxPitchHz
	}
	if c.MinPitchHz <= 0 || c.MaxPitchHz <= 0 {
		return fmt.Errorf("%w: pitch bounds must be positive, got [%v,%v]", ErrInvalidConfig, c.MinPitchHz, c.MaxPitchHz)
	}
	if c.MinPitchHz >= c.MaxPitchHz {
		return fmt.Errorf("%w: min pitch %v must be below max pitch %v", ErrInvalidConfig, c.MinPitchHz, c.MaxPitchHz)
	}
	if c.AMDFFrequency == 0 {
		c.AMDFFrequency = AMDFFrequency
	}
	if c.AMDFFrequency <= 0 {
		return fmt.Errorf("%w: AMDF frequency must be positive, got %v", ErrInvalidConfig, c.AMDFFrequency)
	}
	if c.AMDFRange == 0 {
		c.AMDFRange = AMDFRange
	}
	if c.AMDFRange <= 0 || c.AMDFRange >= 1 {
		return fmt.Errorf("%w: AMDF range must be in (0,1), got %v", ErrInvalidConfig, c.AMDFRange)
	}
	if c.MaxInputHint < 0 {
		return fmt.Errorf("%w: max input hint must be non-negative, got %v", ErrInvalidConfig, c.MaxInputHint)
	}
	return nil
}
