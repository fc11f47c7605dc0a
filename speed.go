package speedshift

import (
	"fmt"
	"math"

	"github.com/arwynfr/go-speedshift/internal/overlap"
	"github.com/arwynfr/go-speedshift/internal/pitch"
	"github.com/arwynfr/go-speedshift/internal/queue"
)

// Stats reports a Stream's internal buffering and processing counters,
// useful for monitoring and tests. It has no bearing on correctness.
type Stats struct {
	InputBuffered  int
	OutputBuffered int
	MinPeriod      int
	MaxPeriod      int

	// PeriodsDetected counts how many times the pitch estimator ran.
	PeriodsDetected int
	// PeriodsSkipped counts how many pitch periods were deleted (speed > 1).
	PeriodsSkipped int
	// PeriodsInserted counts how many pitch periods were duplicated (speed < 1).
	PeriodsInserted int
	// SamplesCopiedVerbatim counts samples forwarded unmodified by the
	// pass-through copier that realizes fractional speed ratios.
	SamplesCopiedVerbatim int
}

// Stream is a streaming, pitch-preserving speed changer. Feed it samples
// with Write, drain processed output with Read, and call Flush once all
// input has been written to emit the tail.
//
// A Stream is stateful and not safe for concurrent use; serialize calls the
// same way you would for a bufio.Writer.
type Stream struct {
	cfg         Config
	detector    *pitch.Detector
	maxRequired int
	unitSpeed   bool

	in  *queue.Float
	out *queue.Float

	remainingInputToCopy int
	closed               bool

	periodsDetected       int
	periodsSkipped        int
	periodsInserted       int
	samplesCopiedVerbatim int
}

// New creates a Stream from cfg. cfg is validated (and its zero-valued
// tunables filled in) before the Stream is built.
func New(cfg Config) (*Stream, error) {
	return newWithAllocator(cfg, nil)
}

// newWithAllocator is New with an explicit queue.Allocator, letting tests
// inject deterministic allocation failure without an exported,
// production-facing knob.
func newWithAllocator(cfg Config, alloc queue.Allocator) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = cfg.allocator
	}

	detector := pitch.NewDetector(cfg.SampleRate, cfg.MinPitchHz, cfg.MaxPitchHz, cfg.AMDFFrequency, cfg.AMDFRange)

	in, err := queue.NewFloatWithAllocator(cfg.MaxInputHint, alloc)
	if err != nil {
		return nil, fmt.Errorf("%w: allocating input buffer: %v", ErrAllocation, err)
	}
	out, err := queue.NewFloatWithAllocator(cfg.MaxInputHint, alloc)
	if err != nil {
		return nil, fmt.Errorf("%w: allocating output buffer: %v", ErrAllocation, err)
	}

	return &Stream{
		cfg:         cfg,
		detector:    detector,
		maxRequired: detector.MaxRequired(),
		unitSpeed:   math.Abs(cfg.Speed-1.0) < unitSpeedEpsilon,
		in:          in,
		out:         out,
	}, nil
}

// Write appends samples to the stream's input and processes as many pitch
// periods as are currently available. It never blocks on output space;
// call Read to drain processed samples.
func (s *Stream) Write(samples []float32) error {
	if s.closed {
		return ErrClosed
	}
	if len(samples) == 0 {
		return nil
	}

	if s.unitSpeed {
		if err := s.out.Append(samples); err != nil {
			return fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		return nil
	}

	if err := s.in.Append(samples); err != nil {
		return fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	return s.drain()
}

// drain runs the pitch-synchronous mutation loop until fewer than
// maxRequired samples remain buffered, mirroring sonic.c's
// processStreamInput driver loop.
func (s *Stream) drain() error {
	for {
		if s.remainingInputToCopy > 0 {
			avail := s.in.Len()
			n := s.remainingInputToCopy
			if n > avail {
				n = avail
			}
			if n == 0 {
				return nil
			}
			if err := s.out.Append(s.in.View(0)[:n]); err != nil {
				return fmt.Errorf("%w: %v", ErrAllocation, err)
			}
			s.in.Drop(n)
			s.remainingInputToCopy -= n
			s.samplesCopiedVerbatim += n
			continue
		}

		if s.in.Len() < s.maxRequired {
			return nil
		}

		view := s.in.View(0)
		period := s.detector.Find(view)
		s.periodsDetected++

		var mutated []float32
		var advance, remaining int
		if s.cfg.Speed > 1.0 {
			mutated, advance, remaining = overlap.Skip(view, period, s.cfg.Speed)
			s.periodsSkipped++
		} else {
			mutated, advance, remaining = overlap.Insert(view, period, s.cfg.Speed)
			s.periodsInserted++
		}

		if err := s.out.Append(mutated); err != nil {
			return fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		s.in.Drop(advance)
		s.remainingInputToCopy = remaining
	}
}

// Read copies up to len(dst) processed samples into dst and returns how
// many were copied. It is valid to call Read after Close to drain whatever
// output remains.
func (s *Stream) Read(dst []float32) int {
	return s.out.Read(dst)
}

// SamplesAvailable returns the number of processed samples currently
// buffered and ready for Read.
func (s *Stream) SamplesAvailable() int {
	return s.out.Len()
}

// Flush forces any buffered input shorter than one full analysis window to
// be processed, emitting the stream's tail. Call it once after the last
// Write, then Read until SamplesAvailable returns 0.
//
// The input is zero-padded to one full analysis window before the final
// pass, so the emitted tail can contain some of that padding; whatever
// input remains after the pass is discarded.
func (s *Stream) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if s.unitSpeed || s.in.Len() == 0 {
		return nil
	}
	if err := s.in.PadZero(s.maxRequired); err != nil {
		return fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if err := s.drain(); err != nil {
		return err
	}
	s.in.Reset()
	s.remainingInputToCopy = 0
	return nil
}

// Close marks the stream closed. Further Write or Flush calls return
// ErrClosed; Read remains usable to drain already-processed output.
func (s *Stream) Close() error {
	s.closed = true
	return nil
}

// Stats reports the stream's current buffering state.
func (s *Stream) Stats() Stats {
	return Stats{
		InputBuffered:         s.in.Len(),
		OutputBuffered:        s.out.Len(),
		MinPeriod:             s.detector.MinPeriod(),
		MaxPeriod:             s.detector.MaxPeriod(),
		PeriodsDetected:       s.periodsDetected,
		PeriodsSkipped:        s.periodsSkipped,
		PeriodsInserted:       s.periodsInserted,
		SamplesCopiedVerbatim: s.samplesCopiedVerbatim,
	}
}
