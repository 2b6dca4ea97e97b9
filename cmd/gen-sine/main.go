// This tool writes a 16-bit PCM sine wave file.
//
// Defaults for the sample rate and channel count can be provided through
// GEN_SINE_SAMPLE_RATE and GEN_SINE_CHANNELS, either in the environment or in
// a .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/cwbudde/audio-io/wav"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var errInvalidFormat = errors.New("sample rate and channels must be positive")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", envInt("GEN_SINE_SAMPLE_RATE", 48000), "sample rate in hertz")
	channels := flagSet.Int("channels", envInt("GEN_SINE_CHANNELS", 1), "number of channels")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *sampleRate <= 0 || *channels <= 0 {
		return errInvalidFormat
	}

	logrus.Infof("generating a %f sec sine wav at %f hz", *length, *frequency)

	rate, numChans := *sampleRate, *channels
	numFrames := int(float64(rate) * *length)
	samples := make([]float32, numFrames*numChans)

	for i := 0; i < numFrames; i++ {
		v := float32(math.Sin(float64(i) / float64(rate) * *frequency * 2 * math.Pi))
		for c := 0; c < numChans; c++ {
			samples[i*numChans+c] = v
		}
	}

	pcm, err := wav.Modulate(samples, 16)
	if err != nil {
		return err
	}

	s := wav.NewStructure(uint16(numChans), uint32(rate), 16, pcm)
	if err := wav.WriteFile(*output, s); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     *output,
		"samples":  s.Samples(),
		"duration": s.Duration(),
	}).Info("sine written")

	return nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("ignoring %s=%q: %v", key, raw, err)

		return fallback
	}

	return v
}
