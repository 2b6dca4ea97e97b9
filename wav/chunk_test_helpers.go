package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// rawChunk builds a chunk whose declared size matches its payload.
func rawChunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func pcmFmtBody(numChans uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	body := make([]byte, 16)
	NewFmtChunk(numChans, sampleRate, bitsPerSample).encode(body)

	return body
}

// buildWav lays out a RIFF/WAVE stream with the given chunks, unpadded.
func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	return buildRiff(t, "RIFF", "WAVE", chunks...)
}

func buildRiff(t *testing.T, riffID, format string, chunks ...testChunk) []byte {
	t.Helper()

	body := []byte(format)
	for _, ch := range chunks {
		if len(ch.id) != 4 {
			t.Fatalf("invalid chunk id %q", ch.id)
		}

		body = append(body, ch.id...)
		body = binary.LittleEndian.AppendUint32(body, ch.size)
		body = append(body, ch.data...)
	}

	out := []byte(riffID)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}

func int16PCM(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}

	return out
}
