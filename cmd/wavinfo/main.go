// This tool prints the format of the passed wav file and lists its chunks.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/audio-io/wav"
	"github.com/sirupsen/logrus"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	logrus.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	dec := wav.NewDecoder(bufio.NewReader(file))

	s, err := dec.Decode()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "AudioFormat: %d\n", s.Fmt.AudioFormat)
	fmt.Fprintf(out, "Channels: %d\n", s.ChannelCount())
	fmt.Fprintf(out, "SampleRate: %d\n", s.SampleRate())
	fmt.Fprintf(out, "BitsPerSample: %d\n", s.BitsPerSample())
	fmt.Fprintf(out, "ByteRate: %d\n", s.ByteRate())
	fmt.Fprintf(out, "BlockAlign: %d\n", s.Fmt.BlockAlign)
	fmt.Fprintf(out, "Samples: %d\n", s.Samples())
	fmt.Fprintf(out, "Duration: %.6f sec\n", s.DurationSeconds())

	if dec.ChunkSize != s.ChunkSize {
		fmt.Fprintf(out, "Declared RIFF size %d, canonical size %d\n", dec.ChunkSize, s.ChunkSize)
	}

	skipped := dec.SkippedChunks()
	if len(skipped) == 0 {
		return nil
	}

	fmt.Fprintln(out, "Skipped chunks:")

	for _, c := range skipped {
		fmt.Fprintf(out, "\t[%d] %q %d bytes\n", c.Order, c.ID[:], c.Size)
	}

	return nil
}
