package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	monoChannels   = 1
	stereoChannels = 2
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
		format:   format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// maxValueForBitDepth returns the full-scale integer magnitude for a PCM
// bit depth, used to normalize samples into the [-1,1] range speedshift
// operates on.
func maxValueForBitDepth(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleaveNormalized converts interleaved PCM integers into per-channel
// float32 slices normalized to [-1,1].
func deinterleaveNormalized(data []int, channels int, maxVal float64) [][]float32 {
	samplesPerChannel := len(data) / channels
	result := make([][]float32, channels)
	for ch := range channels {
		result[ch] = make([]float32, samplesPerChannel)
	}
	inv := 1.0 / maxVal
	for i := range samplesPerChannel {
		base := i * channels
		for ch := range channels {
			result[ch][i] = float32(float64(data[base+ch]) * inv)
		}
	}
	return result
}

// interleaveDenormalized converts per-channel float32 slices back into
// interleaved PCM integers, clamping to [-1,1] first. Channels of unequal
// length are truncated to the shortest.
func interleaveDenormalized(channels [][]float32, maxVal float64) []int {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	for _, ch := range channels {
		if len(ch) < n {
			n = len(ch)
		}
	}
	numChannels := len(channels)
	result := make([]int, n*numChannels)
	for i := range n {
		base := i * numChannels
		for ch := range numChannels {
			sample := float64(channels[ch][i])
			if sample > 1.0 {
				sample = 1.0
			} else if sample < -1.0 {
				sample = -1.0
			}
			result[base+ch] = int(sample * maxVal)
		}
	}
	return result
}

// writeWAV encodes channels (normalized float32, one slice per channel) to
// a new WAV file at path using go-audio/wav's encoder.
func writeWAV(path string, channels [][]float32, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	numChannels := len(channels)
	encoder := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, 1)

	maxVal := maxValueForBitDepth(bitDepth)
	data := interleaveDenormalized(channels, maxVal)

	buf := &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: numChannels,
		},
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return encoder.Close()
}
