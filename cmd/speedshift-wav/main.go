// Command speedshift-wav changes the playback speed of a WAV file while
// preserving its pitch.
//
// Usage:
//
//	speedshift-wav -speed 1.5 input.wav output.wav
//	speedshift-wav -speed 0.75 -analyze input.wav output.wav
//	speedshift-wav -batch jobs.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/arwynfr/go-speedshift"
	"gonum.org/v1/gonum/dsp/fourier"
	"gopkg.in/yaml.v3"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	speed := flag.Float64("speed", 1.0, "Playback speed multiplier (>1 faster, <1 slower)")
	batch := flag.String("batch", "", "Path to a YAML file listing multiple speed-change jobs")
	analyze := flag.Bool("analyze", false, "Report the dominant frequency before and after, to check pitch preservation")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *batch != "" {
		return runBatch(*batch, *analyze, *verbose)
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	return processFile(args[0], args[1], *speed, *analyze, *verbose)
}

// batchJob is one entry of a -batch YAML config file.
type batchJob struct {
	Input  string  `yaml:"input"`
	Output string  `yaml:"output"`
	Speed  float64 `yaml:"speed"`
}

// batchConfig is the top-level shape of a -batch YAML config file.
type batchConfig struct {
	Jobs []batchJob `yaml:"jobs"`
}

func runBatch(path string, analyze, verbose bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read batch config: %w", err)
	}

	var cfg batchConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("failed to parse batch config: %w", err)
	}

	for _, job := range cfg.Jobs {
		speed := job.Speed
		if speed == 0 {
			speed = 1.0
		}
		if verbose {
			log.Printf("Processing %s -> %s at speed %.3f", job.Input, job.Output, speed)
		}
		if err := processFile(job.Input, job.Output, speed, analyze, verbose); err != nil {
			return fmt.Errorf("job %s -> %s: %w", job.Input, job.Output, err)
		}
	}
	return nil
}

func processFile(inputPath, outputPath string, speed float64, analyze, verbose bool) error {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	intBuf, err := input.decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to read audio data: %w", err)
	}

	maxVal := maxValueForBitDepth(input.bitDepth)
	inChannels := deinterleaveNormalized(intBuf.Data, input.channels, maxVal)

	outChannels := make([][]float32, input.channels)
	for ch := range input.channels {
		out, err := speedshift.ChangeSpeedMono(inChannels[ch], input.rate, speed)
		if err != nil {
			return fmt.Errorf("speed change failed on channel %d: %w", ch, err)
		}
		outChannels[ch] = out
	}

	if err := writeWAV(outputPath, outChannels, input.rate, input.bitDepth); err != nil {
		return err
	}

	if verbose {
		log.Printf("%d Hz, %d channels, %d samples -> %d samples at speed %.3fx",
			input.rate, input.channels, len(inChannels[0]), len(outChannels[0]), speed)
	}

	if analyze {
		before := dominantFrequency(inChannels[0], input.rate)
		after := dominantFrequency(outChannels[0], input.rate)
		fmt.Printf("Dominant frequency: %.1f Hz -> %.1f Hz (pitch preserved if close)\n", before, after)
	}

	return nil
}

// dominantFrequency returns the frequency, in Hz, of the largest-magnitude
// non-DC bin of samples' real FFT. It is a coarse pitch-preservation check,
// not a precise pitch estimate.
func dominantFrequency(samples []float32, sampleRate int) float64 {
	if len(samples) < 2 {
		return 0
	}
	signal := make([]float64, len(samples))
	for i, v := range samples {
		signal[i] = float64(v)
	}

	fft := fourier.NewFFT(len(signal))
	spectrum := fft.Coefficients(nil, signal)

	peakBin := 1
	peakMag := 0.0
	for i := 1; i < len(spectrum); i++ {
		mag := math.Hypot(real(spectrum[i]), imag(spectrum[i]))
		if mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}
	return float64(peakBin) * float64(sampleRate) / float64(len(signal))
}
