// Package speedshift provides streaming, pitch-preserving audio
// speed-change: it speeds up or slows down a signal without the
// accompanying shift in pitch that naive resampling produces.
//
// This library is a Go-idiomatic reimplementation of the pitch-synchronous
// overlap-add technique used by sonic, the C speech/music speed-change
// library: an AMDF pitch-period estimator finds the dominant period in each
// analysis window, and that period is either dropped (to speed up) or
// duplicated with a cross-fade (to slow down).
//
// # Quick Start
//
// For one-shot processing of a complete buffer:
//
//	output, err := speedshift.ChangeSpeedMono(input, 44100, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For streaming processing with a reusable Stream:
//
//	s, err := speedshift.New(speedshift.Config{
//	    Speed:      1.5,
//	    SampleRate: 44100,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for chunk := range audioChunks {
//	    if err := s.Write(chunk); err != nil {
//	        log.Fatal(err)
//	    }
//	    out := make([]float32, s.SamplesAvailable())
//	    s.Read(out)
//	    writeOutput(out)
//	}
//
//	s.Flush()
//	tail := make([]float32, s.SamplesAvailable())
//	s.Read(tail)
//	writeOutput(tail)
//
// # Speed Values
//
// Speed is a multiplier: 1.0 leaves the signal unchanged (and takes a
// direct passthrough fast path with no buffering), values above 1.0 play
// faster, values below 1.0 play slower. Pitch is preserved at any speed;
// this is what distinguishes a speed change from a sample-rate change.
//
// # Convenience Functions
//
//   - [NewHalfSpeed] and [NewDoubleSpeed]: common speed presets
//   - [ChangeSpeedMono] and [ChangeSpeedStereo]: one-shot buffer processing
//   - [InterleaveStereo] and [DeinterleaveStereo]: interleaved/planar conversion
//
// # Architecture
//
// A Stream drives three collaborating pieces:
//
//	Write -> [input queue] -> [pitch estimator] -> [skip/insert mutator] -> [output queue] -> Read
//
// The input queue (internal/queue) is a growable FIFO; the estimator
// (internal/pitch) runs a two-pass AMDF search for the dominant pitch
// period; the mutator (internal/overlap) either deletes or duplicates that
// period with a linear cross-fade, carrying forward a verbatim-copy counter
// that realizes fractional speed ratios (approximately: the copy length is
// truncated to whole samples).
//
// # Thread Safety
//
// A Stream is not safe for concurrent use. Serialize Write, Read, Flush,
// and Close calls on a given instance.
//
// # Attribution
//
// This library reimplements the pitch-synchronous time-domain algorithm of
// sonic (https://github.com/waywardgeek/sonic) by Bill Cox, originally
// written in C. The AMDF pitch estimator, the skip/insert period mutators,
// and the fractional-speed verbatim-copy driver are derived from that
// algorithm; the surrounding buffering, configuration, and error-handling
// idioms are this package's own.
package speedshift
