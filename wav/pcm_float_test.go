package wav

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleScale(t *testing.T) {
	assert.Equal(t, 32767.0, sampleScale(16))
	assert.Equal(t, 127.0, sampleScale(8))
}

func TestDemodulate(t *testing.T) {
	tests := []struct {
		name string
		in   int16
		want float32
	}{
		{"zero", 0, 0},
		{"max", 32767, 1},
		{"min goes below -1", -32768, float32(-32768.0 / 32767.0)},
		{"one step", 1, float32(1.0 / 32767.0)},
		{"half", 16384, float32(16384.0 / 32767.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Demodulate(int16PCM(tt.in), 16)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.InDelta(t, tt.want, got[0], 1e-6)
		})
	}

	got, err := Demodulate(int16PCM(-32768), 16)
	require.NoError(t, err)
	assert.Less(t, got[0], float32(-1))
}

func TestDemodulateIgnoresTrailingByte(t *testing.T) {
	pcm := append(int16PCM(100, -100), 0x7f)

	got, err := Demodulate(pcm, 16)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestModulate(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"one", 1, 32767},
		{"minus one", -1, -32767},
		{"tie rounds away from zero", 0.5, 16384},
		{"negative tie rounds away from zero", -0.5, -16384},
		{"wraps above range", 2, -2},
		{"wraps below range", -2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Modulate([]float32{tt.in}, 16)
			require.NoError(t, err)
			assert.Equal(t, int16PCM(tt.want), got)
		})
	}
}

func TestModulateDemodulateIsQuantizationExact(t *testing.T) {
	all := make([]int16, 0, 1<<16)
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		all = append(all, int16(v))
	}

	pcm := int16PCM(all...)

	samples, err := Demodulate(pcm, 16)
	require.NoError(t, err)

	back, err := Modulate(samples, 16)
	require.NoError(t, err)
	require.Equal(t, pcm, back)
}

func TestCodecRejectsOtherBitDepths(t *testing.T) {
	for _, depth := range []int{0, 8, 24, 32} {
		_, err := Demodulate([]byte{0, 0, 0, 0}, depth)
		require.ErrorIs(t, err, ErrUnsupportedBitDepth, "demodulate %d", depth)

		_, err = Modulate([]float32{0}, depth)
		require.ErrorIs(t, err, ErrUnsupportedBitDepth, "modulate %d", depth)
	}
}

func TestSampleCount(t *testing.T) {
	assert.Equal(t, 4, sampleCount(8, 16))
	assert.Equal(t, 4, sampleCount(9, 16))
	assert.Equal(t, 0, sampleCount(8, 0))
	assert.Equal(t, 0, sampleCount(8, 4))
}
