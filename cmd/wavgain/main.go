// This command line tool changes the level of 16-bit wav files.
// The original files are left alone, the processed copies are stored in a
// wavgain folder next to them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/audio-io/wav"
	"github.com/sirupsen/logrus"
)

const outputDirName = "wavgain"

var errNothingToProcess = errors.New("you need to pass -file or -dir to indicate what file or folder content to process")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavgain", flag.ContinueOnError)

	fileToProcess := flagSet.String("file", "", "Path to the wave file to process")
	dirToProcess := flagSet.String("dir", "", "Directory containing all the wav files to process")
	gainDB := flagSet.Float64("gain", 0, "gain to apply in dB, negative values attenuate")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *fileToProcess == "" && *dirToProcess == "" {
		return errNothingToProcess
	}

	factor := float32(math.Pow(10, *gainDB/20))

	if *fileToProcess != "" {
		outPath, err := gainFile(*fileToProcess, factor)
		if err != nil {
			return fmt.Errorf("something went wrong when processing %s: %w", *fileToProcess, err)
		}

		logrus.Infof("Processed file available at %s", outPath)
	}

	if *dirToProcess == "" {
		return nil
	}

	fileInfos, err := os.ReadDir(*dirToProcess)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *dirToProcess, err)
	}

	for _, fi := range fileInfos {
		if fi.IsDir() || !strings.EqualFold(filepath.Ext(fi.Name()), ".wav") {
			continue
		}

		filePath := filepath.Join(*dirToProcess, fi.Name())

		outPath, err := gainFile(filePath, factor)
		if err != nil {
			logrus.WithError(err).Errorf("Something went wrong processing %s", filePath)

			continue
		}

		logrus.Infof("Processed file available at %s", outPath)
	}

	return nil
}

// gainFile scales every sample of the file at path. Samples are clamped to
// [-1, 1] since modulation wraps out of range values.
func gainFile(path string, factor float32) (string, error) {
	in, err := wav.Load(path)
	if err != nil {
		return "", err
	}

	samples, err := in.DemodulatedSamples()
	if err != nil {
		return "", fmt.Errorf("couldn't read samples from %s: %w", path, err)
	}

	var clipped int

	for i, v := range samples {
		v *= factor
		if v > 1 || v < -1 {
			clipped++
			v = max(min(v, 1), -1)
		}

		samples[i] = v
	}

	if clipped > 0 {
		logrus.Warnf("%d samples clipped in %s", clipped, path)
	}

	out, err := in.WithDemodulatedSamples(samples)
	if err != nil {
		return "", fmt.Errorf("failed to encode samples: %w", err)
	}

	outputDir := filepath.Join(filepath.Dir(path), outputDirName)
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	outPath := filepath.Join(outputDir, filepath.Base(path))
	if err := out.WriteFile(outPath); err != nil {
		return "", err
	}

	return outPath, nil
}
