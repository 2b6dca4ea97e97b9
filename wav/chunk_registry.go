package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkHandler decodes one kind of subchunk. Decode may leave bytes unread,
// the registry discards whatever remains of the chunk afterwards.
type ChunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(d *Decoder, ch *riff.Chunk) error
}

// ChunkRegistry resolves chunks to handlers.
type ChunkRegistry struct {
	handlers []ChunkHandler
}

func newDefaultChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		handlers: []ChunkHandler{
			&fmtChunkHandler{},
			&dataChunkHandler{},
		},
	}
}

// Register appends a handler to the registry.
func (r *ChunkRegistry) Register(handler ChunkHandler) {
	if r == nil || handler == nil {
		return
	}

	r.handlers = append(r.handlers, handler)
}

// Decode dispatches a chunk to the first matching handler.
func (r *ChunkRegistry) Decode(dec *Decoder, chnk *riff.Chunk) (bool, error) {
	if r == nil || chnk == nil {
		return false, nil
	}

	for _, handler := range r.handlers {
		if !handler.CanHandle(chnk.ID) {
			continue
		}

		if err := handler.Decode(dec, chnk); err != nil {
			return true, fmt.Errorf("chunk handler decode failed: %w", err)
		}

		if err := skipChunk(chnk); err != nil {
			return true, err
		}

		return true, nil
	}

	return false, nil
}

// skipChunk discards the unread part of the chunk. Running out of input
// before the declared size is an error.
func skipChunk(chnk *riff.Chunk) error {
	rest := int64(chnk.Size - chnk.Pos)
	if lr, ok := chnk.R.(*io.LimitedReader); ok {
		rest = lr.N
	}

	if rest <= 0 {
		return nil
	}

	if _, err := io.CopyN(io.Discard, chnk.R, rest); err != nil {
		return fmt.Errorf("failed to skip %q chunk: %w", chnk.ID[:], unexpectedEOF(err))
	}

	return nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

type fmtChunkHandler struct{}

func (h *fmtChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.FmtID
}

// Decode reads the 16 byte PCM body, any extension is left to the registry
// to discard.
func (h *fmtChunkHandler) Decode(d *Decoder, ch *riff.Chunk) error {
	if ch.Size < fmtChunkSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidFmtChunk, ch.Size)
	}

	var body [fmtChunkSize]byte

	if _, err := io.ReadFull(ch, body[:]); err != nil {
		return fmt.Errorf("failed to read fmt chunk: %w", unexpectedEOF(err))
	}

	fmtChunk := decodeFmtChunk(body[:])
	d.fmtChunk = &fmtChunk

	return nil
}

type dataChunkHandler struct{}

func (h *dataChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == riff.DataFormatID
}

// Decode reads exactly the declared payload. The buffer grows with the data
// actually read so a bogus size can't force a huge allocation.
func (h *dataChunkHandler) Decode(d *Decoder, ch *riff.Chunk) error {
	var buf bytes.Buffer

	if _, err := io.CopyN(&buf, ch, int64(ch.Size)); err != nil {
		return fmt.Errorf("failed to read PCM data: %w", unexpectedEOF(err))
	}

	dataChunk := newDataChunkNoCopy(buf.Bytes())
	d.dataChunk = &dataChunk

	return nil
}
