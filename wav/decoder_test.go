package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/go-audio/riff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalFile(t *testing.T) {
	pcm := int16PCM(0, 1000, -1000, 32767, -32768, 5)
	input := buildWav(t,
		rawChunk("fmt ", pcmFmtBody(2, 48000, 16)),
		rawChunk("data", pcm),
	)

	s, err := ParseBytes(input)
	require.NoError(t, err)

	assert.Equal(t, riff.RiffID, s.ChunkID)
	assert.Equal(t, riff.WavFormatID, s.Format)
	assert.Equal(t, uint32(len(input)-8), s.ChunkSize)
	assert.Equal(t, NewFmtChunk(2, 48000, 16), s.Fmt)
	assert.Equal(t, riff.DataFormatID, s.Data.ID)
	assert.Equal(t, uint32(len(pcm)), s.Data.Size)
	assert.Equal(t, pcm, s.Data.Bytes())
}

func TestParseErrors(t *testing.T) {
	fmtChunk := rawChunk("fmt ", pcmFmtBody(1, 8000, 16))
	dataChunk := rawChunk("data", int16PCM(1, 2))

	tests := []struct {
		name  string
		input func(t *testing.T) []byte
		want  error
	}{
		{"not RIFF", func(t *testing.T) []byte {
			return buildRiff(t, "RIFX", "WAVE", fmtChunk, dataChunk)
		}, ErrUnknownContainerTag},
		{"not WAVE", func(t *testing.T) []byte {
			return buildRiff(t, "RIFF", "AVI ", fmtChunk, dataChunk)
		}, ErrUnknownFormatTag},
		{"no data", func(t *testing.T) []byte {
			return buildWav(t, fmtChunk)
		}, ErrMissingSubchunk},
		{"no fmt", func(t *testing.T) []byte {
			return buildWav(t, dataChunk)
		}, ErrMissingSubchunk},
		{"empty", func(t *testing.T) []byte {
			return nil
		}, io.ErrUnexpectedEOF},
		{"header only", func(t *testing.T) []byte {
			return []byte("RIFF")
		}, io.ErrUnexpectedEOF},
		{"short fmt", func(t *testing.T) []byte {
			return buildWav(t, rawChunk("fmt ", make([]byte, 14)), dataChunk)
		}, ErrInvalidFmtChunk},
		{"truncated data", func(t *testing.T) []byte {
			return buildWav(t, fmtChunk, testChunk{id: "data", size: 1000, data: int16PCM(1, 2)})
		}, io.ErrUnexpectedEOF},
		{"truncated fmt", func(t *testing.T) []byte {
			return buildWav(t, testChunk{id: "fmt ", size: 16, data: make([]byte, 6)})
		}, io.ErrUnexpectedEOF},
		{"truncated unknown chunk", func(t *testing.T) []byte {
			return buildWav(t, fmtChunk, dataChunk, testChunk{id: "LIST", size: 64, data: []byte("INFO")})
		}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseBytes(tt.input(t))
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, Structure{}, s, "no partial structure")
		})
	}
}

func TestParseReportsMissingSubchunkName(t *testing.T) {
	_, err := ParseBytes(buildWav(t, rawChunk("fmt ", pcmFmtBody(1, 8000, 16))))

	var missing *MissingSubchunkError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "data", string(missing.ID[:]))

	_, err = ParseBytes(buildWav(t, rawChunk("data", int16PCM(1))))
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "fmt ", string(missing.ID[:]))
}

func TestParseSkipsUnknownChunks(t *testing.T) {
	pcm := int16PCM(7, 8, 9)
	input := buildWav(t,
		rawChunk("JUNK", []byte{1, 2, 3}),
		rawChunk("fmt ", pcmFmtBody(1, 22050, 16)),
		rawChunk("LIST", []byte("INFOISFT")),
		rawChunk("data", pcm),
		rawChunk("xtra", nil),
	)

	dec := NewDecoder(bytes.NewReader(input))

	s, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, pcm, s.ModulatedBytes())

	assert.Equal(t, []ChunkHeader{
		{ID: [4]byte{'J', 'U', 'N', 'K'}, Size: 3, Order: 0},
		{ID: [4]byte{'L', 'I', 'S', 'T'}, Size: 8, Order: 2},
		{ID: [4]byte{'x', 't', 'r', 'a'}, Size: 0, Order: 4},
	}, dec.SkippedChunks())
}

func TestParseDropsFmtExtension(t *testing.T) {
	body := append(pcmFmtBody(2, 44100, 16), 0x02, 0x00, 0xAA, 0xBB)
	pcm := int16PCM(1, 2, 3, 4)

	s, err := ParseBytes(buildWav(t, rawChunk("fmt ", body), rawChunk("data", pcm)))
	require.NoError(t, err)

	assert.Equal(t, uint32(16), s.Fmt.Size)
	assert.Equal(t, NewFmtChunk(2, 44100, 16), s.Fmt)
	assert.Equal(t, pcm, s.ModulatedBytes())
	assert.Equal(t, uint32(4+(8+16)+(8+8)), s.ChunkSize)
}

func TestParseKeepsStoredRates(t *testing.T) {
	body := pcmFmtBody(2, 44100, 16)
	binary.LittleEndian.PutUint32(body[fmtOffByteRate:], 1)
	binary.LittleEndian.PutUint16(body[fmtOffBlockAlign:], 3)

	s, err := ParseBytes(buildWav(t, rawChunk("fmt ", body), rawChunk("data", nil)))
	require.NoError(t, err)

	assert.Equal(t, uint32(1), s.ByteRate())
	assert.Equal(t, uint16(3), s.Fmt.BlockAlign)
}

func TestParseIgnoresChunkSize(t *testing.T) {
	input := buildWav(t, rawChunk("fmt ", pcmFmtBody(1, 8000, 16)), rawChunk("data", int16PCM(1)))
	binary.LittleEndian.PutUint32(input[4:], 3)

	dec := NewDecoder(bytes.NewReader(input))

	s, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), dec.ChunkSize)
	assert.Equal(t, uint32(len(input)-8), s.ChunkSize)
}

func TestParseToleratesTrailingPadByte(t *testing.T) {
	pcm := []byte{1, 2, 3}
	input := buildWav(t, rawChunk("fmt ", pcmFmtBody(1, 8000, 16)), rawChunk("data", pcm))
	input = append(input, 0)

	s, err := ParseBytes(input)
	require.NoError(t, err)
	assert.Equal(t, pcm, s.ModulatedBytes())
}

func TestParseLastChunkWins(t *testing.T) {
	input := buildWav(t,
		rawChunk("fmt ", pcmFmtBody(1, 8000, 16)),
		rawChunk("data", int16PCM(1)),
		rawChunk("fmt ", pcmFmtBody(2, 16000, 16)),
		rawChunk("data", int16PCM(2, 3)),
	)

	s, err := ParseBytes(input)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), s.ChannelCount())
	assert.Equal(t, int16PCM(2, 3), s.ModulatedBytes())
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestParsePropagatesReadErrors(t *testing.T) {
	boom := errors.New("boom")
	header := []byte("RIFF\x00\x00\x00\x00WAVE")

	_, err := Parse(io.MultiReader(bytes.NewReader(header), errReader{err: boom}))
	require.ErrorIs(t, err, boom)
}
