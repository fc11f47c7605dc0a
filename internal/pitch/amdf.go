// Package pitch implements the Average Magnitude Difference Function (AMDF)
// pitch-period estimator used by the speed-change driver.
//
// It follows sonic.c's findPitchPeriod/findPitchPeriodInRange: a coarse,
// decimated search over the full pitch range followed by a narrow,
// full-resolution search around the coarse result.
package pitch

import "math"

// Detector finds the dominant pitch period of a signal window using a
// two-pass AMDF search. A Detector is immutable after construction and safe
// to share across streams with identical tunables.
type Detector struct {
	minPeriod   int
	maxPeriod   int
	coarseSkip  int
	refineRange float64
}

// NewDetector builds a Detector from sample rate and tunables. minPitchHz
// and maxPitchHz bound the candidate pitch range in Hz; amdfFrequency is
// the decimated target rate for the coarse pass; amdfRange is the fine
// pass's half-width as a fraction of the coarse estimate.
func NewDetector(sampleRate, minPitchHz, maxPitchHz, amdfFrequency int, amdfRange float64) *Detector {
	minPeriod := sampleRate / maxPitchHz
	if minPeriod < 1 {
		minPeriod = 1
	}
	maxPeriod := sampleRate / minPitchHz
	if maxPeriod <= minPeriod {
		maxPeriod = minPeriod + 1
	}

	skip := 1
	if sampleRate > amdfFrequency {
		skip = sampleRate / amdfFrequency
	}

	return &Detector{
		minPeriod:   minPeriod,
		maxPeriod:   maxPeriod,
		coarseSkip:  skip,
		refineRange: amdfRange,
	}
}

// MinPeriod returns the smallest candidate pitch period, in samples.
func (d *Detector) MinPeriod() int { return d.minPeriod }

// MaxPeriod returns the largest candidate pitch period, in samples.
func (d *Detector) MaxPeriod() int { return d.maxPeriod }

// MaxRequired returns the number of contiguous samples the detector must be
// able to read starting at any offset it is asked to analyze.
func (d *Detector) MaxRequired() int { return 2 * d.maxPeriod }

// Find returns the estimated pitch period of samples, which must be at
// least MaxRequired() samples long. It runs a decimated coarse pass over
// the full [MinPeriod,MaxPeriod] range, then refines with a full-resolution
// pass over a narrow window around the coarse estimate.
func (d *Detector) Find(samples []float32) int {
	coarse := amdfInRange(samples, d.minPeriod, d.maxPeriod, d.coarseSkip)

	lo := int(math.Floor(float64(coarse) * (1 - d.refineRange)))
	hi := int(math.Ceil(float64(coarse) * (1 + d.refineRange)))
	if lo < d.minPeriod {
		lo = d.minPeriod
	}
	if hi > d.maxPeriod {
		hi = d.maxPeriod
	}
	return amdfInRange(samples, lo, hi, 1)
}

// amdfInRange scans candidate periods lo, lo+skip, ..., <=hi and returns the
// one minimizing D(p)/p, where D(p) = sum of |s[i]-s[i+p]| for i=0,skip,...,<p.
//
// The tie-break is lexicographically first: bestPeriod starts at 0 (meaning
// "none yet") and a candidate replaces it iff its raw difference D is less
// than minDiff*period, which is algebraically D/period < minDiff without
// paying for the division until a candidate is actually accepted.
func amdfInRange(samples []float32, lo, hi, skip int) int {
	bestPeriod := 0
	var minDiff float64

	for period := lo; period <= hi; period += skip {
		var diff float64
		s := samples
		p := samples[period:]
		for x := 0; x < period; x += skip {
			v := float64(s[x]) - float64(p[x])
			if v < 0 {
				v = -v
			}
			diff += v
		}
		if bestPeriod == 0 || diff < minDiff*float64(period) {
			minDiff = diff / float64(period)
			bestPeriod = period
		}
	}
	return bestPeriod
}
