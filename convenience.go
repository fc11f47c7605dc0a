package speedshift

// Common sample rates for convenience constructors.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateSpeech is the speech recognition common sample rate.
	RateSpeech = 22050
)

// NewHalfSpeed creates a Stream that plays back at half speed (speed 0.5)
// at the given sample rate, using package default pitch tunables.
func NewHalfSpeed(sampleRate int) (*Stream, error) {
	return New(Config{Speed: 0.5, SampleRate: sampleRate})
}

// NewDoubleSpeed creates a Stream that plays back at double speed
// (speed 2.0) at the given sample rate, using package default pitch
// tunables.
func NewDoubleSpeed(sampleRate int) (*Stream, error) {
	return New(Config{Speed: 2.0, SampleRate: sampleRate})
}

// ChangeSpeedMono is a convenience function for one-shot speed changing of
// a complete mono buffer. It builds a Stream, writes the whole input,
// flushes, and drains all output.
func ChangeSpeedMono(input []float32, sampleRate int, speed float64) ([]float32, error) {
	s, err := New(Config{Speed: speed, SampleRate: sampleRate})
	if err != nil {
		return nil, err
	}

	if err := s.Write(input); err != nil {
		return nil, err
	}
	if err := s.Flush(); err != nil {
		return nil, err
	}

	output := make([]float32, 0, s.SamplesAvailable())
	chunk := make([]float32, 4096)
	for {
		n := s.Read(chunk)
		if n == 0 {
			break
		}
		output = append(output, chunk[:n]...)
	}
	return output, nil
}

// ChangeSpeedStereo is the interleaved-stereo equivalent of ChangeSpeedMono.
// It deinterleaves, processes each channel independently (the pitch
// estimator and mutators operate per-channel, matching sonic.c's model of
// one stream per channel), and re-interleaves the result. Because each
// channel is estimated independently, the two channels' output lengths can
// differ by a few samples; the shorter one is used for the returned length.
func ChangeSpeedStereo(interleaved []float32, sampleRate int, speed float64) ([]float32, error) {
	left, right := DeinterleaveStereo(interleaved)

	leftOut, err := ChangeSpeedMono(left, sampleRate, speed)
	if err != nil {
		return nil, err
	}
	rightOut, err := ChangeSpeedMono(right, sampleRate, speed)
	if err != nil {
		return nil, err
	}

	return InterleaveStereo(leftOut, rightOut), nil
}

// InterleaveStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]. Extra samples in the
// longer channel are dropped.
func InterleaveStereo(left, right []float32) []float32 {
	n := min(len(left), len(right))
	result := make([]float32, n*2)
	for i := range n {
		result[i*2] = left[i]
		result[i*2+1] = right[i]
	}
	return result
}

// DeinterleaveStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...].
func DeinterleaveStereo(interleaved []float32) (left, right []float32) {
	n := len(interleaved) / 2
	left = make([]float32, n)
	right = make([]float32, n)
	for i := range n {
		left[i] = interleaved[i*2]
		right[i] = interleaved[i*2+1]
	}
	return left, right
}
