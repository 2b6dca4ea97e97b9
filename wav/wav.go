package wav

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNullOrMissingPath is returned when an empty path is passed to Load
	// or WriteFile.
	ErrNullOrMissingPath = errors.New("missing file path")
	// ErrFileNotFound is returned when the file to load does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnknownContainerTag is returned when a stream doesn't start with "RIFF".
	ErrUnknownContainerTag = errors.New("unknown container tag, expected RIFF")
	// ErrUnknownFormatTag is returned when the RIFF form type isn't "WAVE".
	ErrUnknownFormatTag = errors.New("unknown format tag, expected WAVE")
	// ErrMissingSubchunk is matched by every *MissingSubchunkError.
	ErrMissingSubchunk = errors.New("missing subchunk")
	// ErrUnsupportedBitDepth is returned by the sample codec for any bit depth
	// other than 16.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrUnsupportedAudioFormat is returned when samples are requested from a
	// structure whose fmt chunk isn't linear PCM.
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	// ErrInvalidFmtChunk is returned when a fmt chunk is shorter than 16 bytes.
	ErrInvalidFmtChunk = errors.New("invalid fmt chunk")
)

// MissingSubchunkError reports a mandatory subchunk that wasn't found before
// the end of the stream.
type MissingSubchunkError struct {
	ID [4]byte
}

func (e *MissingSubchunkError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingSubchunk, e.ID[:])
}

// Is makes errors.Is(err, ErrMissingSubchunk) hold.
func (e *MissingSubchunkError) Is(target error) bool {
	return target == ErrMissingSubchunk
}

// durationSeconds divides the per-channel sample count, truncated to whole
// frames, by the sample rate.
func durationSeconds(samples, numChans int, sampleRate uint32) float64 {
	if numChans <= 0 || sampleRate == 0 {
		return 0
	}

	return float64(samples/numChans) / float64(sampleRate)
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
