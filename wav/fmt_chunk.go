package wav

import (
	"encoding/binary"

	"github.com/go-audio/riff"
)

const (
	wavFormatPCM = 1

	// fmtChunkSize is the size of the PCM fmt chunk body. Only those bytes are
	// interpreted, longer chunks have their extension dropped.
	fmtChunkSize = 16

	// offsets inside the fmt chunk body
	fmtOffAudioFormat   = 0
	fmtOffNumChannels   = 2
	fmtOffSampleRate    = 4
	fmtOffByteRate      = 8
	fmtOffBlockAlign    = 12
	fmtOffBitsPerSample = 14
)

// FmtChunk is the "fmt " subchunk describing the PCM layout.
type FmtChunk struct {
	ID   [4]byte
	Size uint32

	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// NewFmtChunk builds a linear PCM fmt chunk, deriving the byte rate and the
// block alignment from the channel count, sample rate and bit depth.
func NewFmtChunk(numChans uint16, sampleRate uint32, bitsPerSample uint16) FmtChunk {
	bytesPerSample := uint32(bitsPerSample / 8)

	return FmtChunk{
		ID:            riff.FmtID,
		Size:          fmtChunkSize,
		AudioFormat:   wavFormatPCM,
		NumChannels:   numChans,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(numChans) * bytesPerSample,
		BlockAlign:    uint16(uint32(numChans) * bytesPerSample),
		BitsPerSample: bitsPerSample,
	}
}

// NewFmtChunkExplicit builds a fmt chunk from all six stored fields. Nothing
// is recomputed, so values read from a file survive unchanged even when they
// don't match the PCM formulas.
func NewFmtChunkExplicit(audioFormat, numChans uint16, sampleRate, byteRate uint32, blockAlign, bitsPerSample uint16) FmtChunk {
	return FmtChunk{
		ID:            riff.FmtID,
		Size:          fmtChunkSize,
		AudioFormat:   audioFormat,
		NumChannels:   numChans,
		SampleRate:    sampleRate,
		ByteRate:      byteRate,
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
	}
}

// IsPCM reports whether the chunk describes linear PCM.
func (f FmtChunk) IsPCM() bool {
	return f.AudioFormat == wavFormatPCM
}

// decodeFmtChunk interprets the first 16 bytes of a fmt chunk body.
func decodeFmtChunk(b []byte) FmtChunk {
	return NewFmtChunkExplicit(
		binary.LittleEndian.Uint16(b[fmtOffAudioFormat:]),
		binary.LittleEndian.Uint16(b[fmtOffNumChannels:]),
		binary.LittleEndian.Uint32(b[fmtOffSampleRate:]),
		binary.LittleEndian.Uint32(b[fmtOffByteRate:]),
		binary.LittleEndian.Uint16(b[fmtOffBlockAlign:]),
		binary.LittleEndian.Uint16(b[fmtOffBitsPerSample:]),
	)
}

// encode writes the 16 byte body into b.
func (f FmtChunk) encode(b []byte) {
	binary.LittleEndian.PutUint16(b[fmtOffAudioFormat:], f.AudioFormat)
	binary.LittleEndian.PutUint16(b[fmtOffNumChannels:], f.NumChannels)
	binary.LittleEndian.PutUint32(b[fmtOffSampleRate:], f.SampleRate)
	binary.LittleEndian.PutUint32(b[fmtOffByteRate:], f.ByteRate)
	binary.LittleEndian.PutUint16(b[fmtOffBlockAlign:], f.BlockAlign)
	binary.LittleEndian.PutUint16(b[fmtOffBitsPerSample:], f.BitsPerSample)
}
