// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/audio-io/wav"
	"github.com/go-audio/aiff"
	"github.com/sirupsen/logrus"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	outPath, err := run(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func run(args []string) (string, error) {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagPath := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	if err := flagSet.Parse(args); err != nil {
		return "", err
	}

	if *flagPath == "" {
		return "", errMissingPath
	}

	sourcePath, err := expandHome(*flagPath)
	if err != nil {
		return "", err
	}

	return convert(sourcePath)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

func convert(sourcePath string) (outPath string, err error) {
	in, err := wav.Load(sourcePath)
	if err != nil {
		return "", err
	}

	s := in.Structure()

	intBuf, err := s.IntBuffer()
	if err != nil {
		return "", fmt.Errorf("invalid WAV file: %w", err)
	}

	outPath = sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer func() {
		cerr := outFile.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	encoder := aiff.NewEncoder(outFile, int(s.SampleRate()), int(s.BitsPerSample()), int(s.ChannelCount()))

	if err := encoder.Write(intBuf); err != nil {
		return "", fmt.Errorf("failed to write aiff samples: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"source":  sourcePath,
		"samples": s.Samples(),
	}).Debug("converted")

	return outPath, nil
}
