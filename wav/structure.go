package wav

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// Structure is a parsed or constructed canonical wave file. It's a value:
// every transformation returns a new Structure.
type Structure struct {
	ChunkID [4]byte
	// ChunkSize counts every byte after this field.
	ChunkSize uint32
	Format    [4]byte

	Fmt  FmtChunk
	Data DataChunk
}

// NewStructure builds a PCM structure from its format parameters and a copy
// of the PCM bytes.
func NewStructure(numChans uint16, sampleRate uint32, bitsPerSample uint16, pcm []byte) Structure {
	return NewStructureFromChunks(NewFmtChunk(numChans, sampleRate, bitsPerSample), NewDataChunk(pcm))
}

// NewStructureFromChunks assembles the RIFF header around the two subchunks.
func NewStructureFromChunks(fmtChunk FmtChunk, dataChunk DataChunk) Structure {
	s := Structure{
		ChunkID: riff.RiffID,
		Format:  riff.WavFormatID,
		Fmt:     fmtChunk,
		Data:    dataChunk,
	}
	s.ChunkSize = s.TotalSize()

	return s
}

// TotalSize is 4 + (8 + fmt size) + (8 + data size).
func (s Structure) TotalSize() uint32 {
	return 4 + (8 + s.Fmt.Size) + (8 + s.Data.Size)
}

// SampleRate returns the number of frames per second.
func (s Structure) SampleRate() uint32 { return s.Fmt.SampleRate }

// BitsPerSample returns the sample bit depth.
func (s Structure) BitsPerSample() uint16 { return s.Fmt.BitsPerSample }

// ChannelCount returns the number of interleaved channels.
func (s Structure) ChannelCount() uint16 { return s.Fmt.NumChannels }

// ByteRate returns the stored byte rate.
func (s Structure) ByteRate() uint32 { return s.Fmt.ByteRate }

// Samples returns the total number of samples across all channels.
func (s Structure) Samples() int {
	return sampleCount(s.Data.Len(), int(s.Fmt.BitsPerSample))
}

// DurationSeconds is (Samples / ChannelCount) / SampleRate.
func (s Structure) DurationSeconds() float64 {
	return durationSeconds(s.Samples(), int(s.Fmt.NumChannels), s.Fmt.SampleRate)
}

// Duration returns DurationSeconds as a time.Duration.
func (s Structure) Duration() time.Duration {
	return secondsToDuration(s.DurationSeconds())
}

// ModulatedBytes returns a copy of the raw PCM payload.
func (s Structure) ModulatedBytes() []byte {
	return s.Data.Bytes()
}

// DemodulatedSamples decodes the PCM payload into normalized floats.
func (s Structure) DemodulatedSamples() ([]float32, error) {
	if !s.Fmt.IsPCM() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAudioFormat, s.Fmt.AudioFormat)
	}

	return Demodulate(s.Data.data, int(s.Fmt.BitsPerSample))
}

// WithDemodulatedSamples returns a new structure holding the modulated
// samples. The format is rederived from the channel count, sample rate and
// bit depth. s is left untouched.
func (s Structure) WithDemodulatedSamples(samples []float32) (Structure, error) {
	pcm, err := Modulate(samples, int(s.Fmt.BitsPerSample))
	if err != nil {
		return Structure{}, err
	}

	return NewStructureFromChunks(
		NewFmtChunk(s.Fmt.NumChannels, s.Fmt.SampleRate, s.Fmt.BitsPerSample),
		newDataChunkNoCopy(pcm),
	), nil
}

// AudioFormat returns the go-audio format description.
func (s Structure) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: int(s.Fmt.NumChannels),
		SampleRate:  int(s.Fmt.SampleRate),
	}
}

// Buffer returns the demodulated samples as a go-audio float buffer.
func (s Structure) Buffer() (*audio.Float32Buffer, error) {
	samples, err := s.DemodulatedSamples()
	if err != nil {
		return nil, err
	}

	return &audio.Float32Buffer{
		Data:           samples,
		Format:         s.AudioFormat(),
		SourceBitDepth: int(s.Fmt.BitsPerSample),
	}, nil
}

// IntBuffer returns the PCM samples as integers.
func (s Structure) IntBuffer() (*audio.IntBuffer, error) {
	if !s.Fmt.IsPCM() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAudioFormat, s.Fmt.AudioFormat)
	}

	if err := checkBitDepth(int(s.Fmt.BitsPerSample)); err != nil {
		return nil, err
	}

	samples := decodePCMInt16(s.Data.data)
	data := make([]int, len(samples))

	for i, v := range samples {
		data[i] = int(v)
	}

	return &audio.IntBuffer{
		Data:           data,
		Format:         s.AudioFormat(),
		SourceBitDepth: int(s.Fmt.BitsPerSample),
	}, nil
}

// String implements the Stringer interface.
func (s Structure) String() string {
	return fmt.Sprintf("%d Hz @ %d bits, %d channel(s), %d avg bytes/sec, duration: %s",
		s.Fmt.SampleRate, s.Fmt.BitsPerSample, s.Fmt.NumChannels, s.Fmt.ByteRate, s.Duration())
}
