package wav

import "time"

// Container identifies the file format backing an AudioFile.
type Container int

const (
	// ContainerWAVE is a RIFF/WAVE file.
	ContainerWAVE Container = iota + 1
)

func (c Container) String() string {
	switch c {
	case ContainerWAVE:
		return "WAVE"
	default:
		return "unknown"
	}
}

// AudioFile is the set of operations every supported container offers.
type AudioFile interface {
	Container() Container

	SampleRate() uint32
	BitsPerSample() uint16
	ChannelCount() uint16
	ByteRate() uint32
	// Samples counts samples across all channels.
	Samples() int
	DurationSeconds() float64

	DemodulatedSamples() ([]float32, error)
	// WithDemodulatedSamples returns a new file, the receiver is unchanged.
	WithDemodulatedSamples(samples []float32) (AudioFile, error)
	ModulatedBytes() []byte

	WriteFile(path string) error
	WriteFileAsync(path string) <-chan error
}

var _ AudioFile = (*WaveFile)(nil)

// WaveFile is the AudioFile implementation for RIFF/WAVE.
type WaveFile struct {
	s    Structure
	path string
}

// NewWaveFile wraps a structure.
func NewWaveFile(s Structure) *WaveFile {
	return &WaveFile{s: s}
}

// Structure returns the underlying structure.
func (f *WaveFile) Structure() Structure { return f.s }

// Path returns the path the file was loaded from, if any.
func (f *WaveFile) Path() string { return f.path }

func (f *WaveFile) Container() Container { return ContainerWAVE }

func (f *WaveFile) SampleRate() uint32 { return f.s.SampleRate() }

func (f *WaveFile) BitsPerSample() uint16 { return f.s.BitsPerSample() }

func (f *WaveFile) ChannelCount() uint16 { return f.s.ChannelCount() }

func (f *WaveFile) ByteRate() uint32 { return f.s.ByteRate() }

func (f *WaveFile) Samples() int { return f.s.Samples() }

func (f *WaveFile) DurationSeconds() float64 { return f.s.DurationSeconds() }

// Duration returns the playing time.
func (f *WaveFile) Duration() time.Duration { return f.s.Duration() }

func (f *WaveFile) DemodulatedSamples() ([]float32, error) {
	return f.s.DemodulatedSamples()
}

func (f *WaveFile) WithDemodulatedSamples(samples []float32) (AudioFile, error) {
	s, err := f.s.WithDemodulatedSamples(samples)
	if err != nil {
		return nil, err
	}

	return NewWaveFile(s), nil
}

func (f *WaveFile) ModulatedBytes() []byte { return f.s.ModulatedBytes() }

func (f *WaveFile) WriteFile(path string) error {
	return WriteFile(path, f.s)
}

func (f *WaveFile) WriteFileAsync(path string) <-chan error {
	return WriteFileAsync(path, f.s)
}

func (f *WaveFile) String() string { return f.s.String() }
