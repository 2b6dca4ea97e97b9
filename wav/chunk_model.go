package wav

import "github.com/go-audio/riff"

// DataChunk is the "data" subchunk holding the raw PCM payload.
// The payload is private so a chunk handed out can't be altered.
type DataChunk struct {
	ID   [4]byte
	Size uint32
	data []byte
}

// NewDataChunk wraps a copy of the passed PCM bytes.
func NewDataChunk(data []byte) DataChunk {
	return newDataChunkNoCopy(append([]byte(nil), data...))
}

func newDataChunkNoCopy(data []byte) DataChunk {
	return DataChunk{
		ID:   riff.DataFormatID,
		Size: uint32(len(data)),
		data: data,
	}
}

// Bytes returns a copy of the PCM payload.
func (c DataChunk) Bytes() []byte {
	return append([]byte(nil), c.data...)
}

// Len returns the payload length in bytes.
func (c DataChunk) Len() int {
	return len(c.data)
}

// ChunkHeader identifies a subchunk skipped while decoding.
type ChunkHeader struct {
	ID   [4]byte
	Size uint32
	// Order is the index of the subchunk in the stream, starting at 0.
	Order int
}

func cloneChunkHeaders(chunks []ChunkHeader) []ChunkHeader {
	if len(chunks) == 0 {
		return nil
	}

	return append([]ChunkHeader(nil), chunks...)
}

// CIDList is the chunk ID for a LIST chunk.
var CIDList = [4]byte{'L', 'I', 'S', 'T'}
