package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Canonical header layout, all integers little endian.
const (
	offChunkID   = 0
	offChunkSize = 4
	offFormat    = 8
	offFmtID     = 12
	offFmtSize   = 16
	offFmtBody   = 20
	offDataID    = 36
	offDataSize  = 40

	headerSize = 44
)

var (
	errNilEncoder = errors.New("can't write a nil encoder")
	errNilWriter  = errors.New("can't write to a nil writer")
)

// Encoder serializes structures into the canonical 44 byte header layout
// followed by the PCM payload.
type Encoder struct {
	w io.Writer

	WrittenBytes int
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes s as is. Derived fields aren't checked and an odd-length
// payload isn't followed by a pad byte.
func (e *Encoder) Encode(s Structure) error {
	if e == nil {
		return errNilEncoder
	}

	if e.w == nil {
		return errNilWriter
	}

	hdr := s.encodeHeader()

	if err := e.add(hdr[:]); err != nil {
		return fmt.Errorf("error encoding the wav header - %w", err)
	}

	if err := e.add(s.Data.data); err != nil {
		return fmt.Errorf("error encoding the PCM data - %w", err)
	}

	return nil
}

func (e *Encoder) add(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	n, err := e.w.Write(b)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write %d bytes: %w", len(b), err)
	}

	return nil
}

func (s Structure) encodeHeader() [headerSize]byte {
	var b [headerSize]byte

	copy(b[offChunkID:], s.ChunkID[:])
	binary.LittleEndian.PutUint32(b[offChunkSize:], s.ChunkSize)
	copy(b[offFormat:], s.Format[:])

	copy(b[offFmtID:], s.Fmt.ID[:])
	binary.LittleEndian.PutUint32(b[offFmtSize:], s.Fmt.Size)
	s.Fmt.encode(b[offFmtBody:offDataID])

	copy(b[offDataID:], s.Data.ID[:])
	binary.LittleEndian.PutUint32(b[offDataSize:], s.Data.Size)

	return b
}

// WriteTo implements io.WriterTo.
func (s Structure) WriteTo(w io.Writer) (int64, error) {
	enc := NewEncoder(w)
	err := enc.Encode(s)

	return int64(enc.WrittenBytes), err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Structure) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+s.Data.Len()))

	if _, err := s.WriteTo(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
