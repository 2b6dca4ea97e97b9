package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/sirupsen/logrus"
)

const chunkHeaderSize = 8

// Decoder walks the RIFF chunk stream of a wave file.
type Decoder struct {
	r      io.Reader
	chunks *ChunkRegistry

	// ChunkSize is the size declared in the RIFF header. It isn't checked
	// against the stream length.
	ChunkSize uint32

	fmtChunk  *FmtChunk
	dataChunk *DataChunk
	skipped   []ChunkHeader
	order     int
}

// NewDecoder creates a decoder reading from r. The reader is consumed
// sequentially and never rewound.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:      r,
		chunks: newDefaultChunkRegistry(),
	}
}

// Parse decodes a whole wave stream.
func Parse(r io.Reader) (Structure, error) {
	return NewDecoder(r).Decode()
}

// ParseBytes decodes a wave file held in memory.
func ParseBytes(b []byte) (Structure, error) {
	return Parse(bytes.NewReader(b))
}

// RegisterChunkHandler adds a handler consulted for subchunks the decoder
// doesn't handle itself.
func (d *Decoder) RegisterChunkHandler(h ChunkHandler) {
	d.chunks.Register(h)
}

// SkippedChunks returns the headers of the subchunks that no handler claimed.
func (d *Decoder) SkippedChunks() []ChunkHeader {
	if d == nil {
		return nil
	}

	return cloneChunkHeaders(d.skipped)
}

// Decode reads the stream until its end. No partial structure is returned:
// on failure the Structure is the zero value.
func (d *Decoder) Decode() (Structure, error) {
	if err := d.readHeader(); err != nil {
		return Structure{}, err
	}

	for {
		id, size, err := d.nextChunkHeader()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Structure{}, err
		}

		chunk := &riff.Chunk{
			ID:   id,
			Size: int(size),
			R:    &io.LimitedReader{R: d.r, N: int64(size)},
		}

		handled, err := d.chunks.Decode(d, chunk)
		if err != nil {
			return Structure{}, err
		}

		if !handled {
			logrus.Debugf("skipping unknown %q chunk of %d bytes", id[:], size)

			if err := skipChunk(chunk); err != nil {
				return Structure{}, err
			}

			d.skipped = append(d.skipped, ChunkHeader{ID: id, Size: size, Order: d.order})
		}

		d.order++
	}

	if d.fmtChunk == nil {
		return Structure{}, &MissingSubchunkError{ID: riff.FmtID}
	}

	if d.dataChunk == nil {
		return Structure{}, &MissingSubchunkError{ID: riff.DataFormatID}
	}

	return NewStructureFromChunks(*d.fmtChunk, *d.dataChunk), nil
}

func (d *Decoder) readHeader() error {
	id, err := d.readTag()
	if err != nil {
		return fmt.Errorf("failed to read chunk ID: %w", err)
	}

	if id != riff.RiffID {
		return fmt.Errorf("%q - %w", id[:], ErrUnknownContainerTag)
	}

	var size [4]byte
	if _, err := io.ReadFull(d.r, size[:]); err != nil {
		return fmt.Errorf("failed to read chunk size: %w", unexpectedEOF(err))
	}

	d.ChunkSize = binary.LittleEndian.Uint32(size[:])

	format, err := d.readTag()
	if err != nil {
		return fmt.Errorf("failed to read format: %w", err)
	}

	if format != riff.WavFormatID {
		return fmt.Errorf("%q - %w", format[:], ErrUnknownFormatTag)
	}

	return nil
}

func (d *Decoder) readTag() ([4]byte, error) {
	var id [4]byte

	if _, err := io.ReadFull(d.r, id[:]); err != nil {
		return id, unexpectedEOF(err)
	}

	return id, nil
}

// nextChunkHeader returns io.EOF once the stream is exhausted. Fewer than
// eight trailing bytes (typically a pad byte) also end the walk.
func (d *Decoder) nextChunkHeader() ([4]byte, uint32, error) {
	var (
		id  [4]byte
		hdr [chunkHeaderSize]byte
	)

	n, err := io.ReadFull(d.r, hdr[:])

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		logrus.Debugf("ignoring %d trailing bytes", n)

		return id, 0, io.EOF
	case errors.Is(err, io.EOF):
		return id, 0, io.EOF
	case err != nil:
		return id, 0, fmt.Errorf("error reading chunk header - %w", err)
	}

	copy(id[:], hdr[0:4])

	return id, binary.LittleEndian.Uint32(hdr[4:8]), nil
}
