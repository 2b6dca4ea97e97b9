package wav

import (
	"encoding/binary"
	"fmt"
	"math"
)

const bitDepth16 = 16

// sampleScale returns 2^(bitsPerSample-1) - 1, 32767 for 16-bit audio. The
// integer range is asymmetric so -32768 demodulates slightly below -1.
func sampleScale(bitsPerSample int) float64 {
	return math.Pow(2, float64(bitsPerSample-1)) - 1
}

func bytesPerSample(bitsPerSample int) int {
	return bitsPerSample / 8
}

func checkBitDepth(bitsPerSample int) error {
	if bitsPerSample != bitDepth16 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}

	return nil
}

// sampleCount returns the number of interleaved samples stored in n bytes.
func sampleCount(n int, bitsPerSample int) int {
	k := bytesPerSample(bitsPerSample)
	if k <= 0 {
		return 0
	}

	return n / k
}

// Demodulate converts 16-bit signed little endian PCM into floats in about
// [-1, 1]. A trailing partial sample is ignored.
func Demodulate(pcm []byte, bitsPerSample int) ([]float32, error) {
	if err := checkBitDepth(bitsPerSample); err != nil {
		return nil, err
	}

	scale := sampleScale(bitsPerSample)
	ints := decodePCMInt16(pcm)
	out := make([]float32, len(ints))

	for i, v := range ints {
		out[i] = float32(float64(v) / scale)
	}

	return out, nil
}

func decodePCMInt16(pcm []byte) []int16 {
	out := make([]int16, sampleCount(len(pcm), bitDepth16))
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	return out
}

// Modulate converts floats into 16-bit signed little endian PCM. Samples are
// scaled by 32767 and rounded half away from zero.
//
// Values are not clamped: anything outside [-1, 1] wraps when narrowed to
// 16 bits. Callers must keep samples in range.
func Modulate(samples []float32, bitsPerSample int) ([]byte, error) {
	if err := checkBitDepth(bitsPerSample); err != nil {
		return nil, err
	}

	scale := sampleScale(bitsPerSample)
	out := make([]byte, len(samples)*bytesPerSample(bitsPerSample))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(float32ToPCMInt16(s, scale)))
	}

	return out, nil
}

func float32ToPCMInt16(value float32, scale float64) int16 {
	return int16(int64(math.Round(float64(value) * scale)))
}
