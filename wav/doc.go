// Package wav reads, writes and transforms canonical RIFF/WAVE files holding
// 16-bit linear PCM audio.
//
// A file is represented by an immutable Structure: the RIFF header, the
// 16-byte fmt chunk (FmtChunk) and the data chunk (DataChunk). Structures are
// produced by Parse/Load and consumed by WriteTo/WriteFile:
//
//	f, err := wav.Load("in.wav")
//	samples, err := f.DemodulatedSamples()
//	// ... process samples ...
//	out, err := f.WithDemodulatedSamples(samples)
//	err = out.WriteFile("out.wav")
//
// Unknown subchunks are skipped by their declared length. Any vendor bytes
// trailing the first 16 bytes of the fmt chunk are consumed and dropped.
//
// The writer emits the structure exactly as given. It neither validates the
// derived ByteRate/BlockAlign fields nor pads an odd-length data payload.
package wav
