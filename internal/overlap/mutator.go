// Package overlap implements the pitch-synchronous overlap-add mutators
// that realize time-compression and time-expansion: Skip deletes one pitch
// period (speed > 1) and Insert duplicates one pitch period (speed < 1),
// smoothing the seam with a linear cross-fade.
//
// This mirrors sonic.c's skipPitchPeriod/insertPitchPeriod.
package overlap

// Skip consumes one pitch period from view (which must hold at least
// 2*period samples) and returns a cross-faded segment, the number of input
// samples the driver should advance past (period+newSamples), and how many
// verbatim samples the driver must copy before the next mutator call (0 if
// none).
//
// For t in [0,len(out)): out[t] = (view[t]*(newSamples-t) +
// view[t+period]*t) / newSamples — a fade from the first period into the
// second, skipping the period in between.
func Skip(view []float32, period int, speed float64) (out []float32, advance, remainingInputToCopy int) {
	var newSamples int
	if speed >= 2.0 {
		newSamples = int(float64(period) / (speed - 1.0))
	} else {
		newSamples = period
		remainingInputToCopy = int(float64(period) * (2.0 - speed) / (speed - 1.0))
	}

	out = make([]float32, newSamples)
	if newSamples > 0 {
		scale := 1.0 / float64(newSamples)
		for t := range newSamples {
			weighted := float64(view[t])*float64(newSamples-t) + float64(view[t+period])*float64(t)
			out[t] = float32(weighted * scale)
		}
	}

	advance = period + newSamples
	return out, advance, remainingInputToCopy
}

// Insert consumes one pitch period from view (which must hold at least
// 2*period samples) and returns the period copied verbatim followed by a
// cross-faded segment, the number of input samples the driver should
// advance past (newSamples only — the driver is meant to see the
// cross-faded region again on its next pass), and how many verbatim
// samples the driver must copy before the next mutator call (0 if none).
//
// newSamples is clamped to at least 1: at extreme speeds below 0.5 the raw
// formula can truncate to 0, which would stall the driver's read cursor
// (see DESIGN.md's resolution of the corresponding spec open question).
//
// For t in [0,newSamples): out[period+t] = (view[t]*t +
// view[t+period]*(newSamples-t)) / newSamples — the period is emitted
// verbatim first, then fades from the second period back into the first.
func Insert(view []float32, period int, speed float64) (out []float32, advance, remainingInputToCopy int) {
	var newSamples int
	if speed < 0.5 {
		newSamples = int(float64(period) * speed / (1.0 - speed))
	} else {
		newSamples = period
		remainingInputToCopy = int(float64(period) * (2.0*speed - 1.0) / (1.0 - speed))
	}
	if newSamples < minNewSamples {
		newSamples = minNewSamples
	}

	out = make([]float32, period+newSamples)
	copy(out, view[:period])

	scale := 1.0 / float64(newSamples)
	for t := range newSamples {
		weighted := float64(view[t])*float64(t) + float64(view[t+period])*float64(newSamples-t)
		out[period+t] = float32(weighted * scale)
	}

	advance = newSamples
	return out, advance, remainingInputToCopy
}
