package wav

import (
	"bytes"
	"fmt"
	"log"
	"math"
)

func ExampleNewStructure() {
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/8000))
	}

	pcm, err := Modulate(samples, 16)
	if err != nil {
		log.Fatal(err)
	}

	s := NewStructure(1, 8000, 16, pcm)
	fmt.Println(s)
	fmt.Println("samples:", s.Samples(), "chunk size:", s.ChunkSize)
	// Output:
	// 8000 Hz @ 16 bits, 1 channel(s), 16000 avg bytes/sec, duration: 1s
	// samples: 8000 chunk size: 16036
}

func ExampleParse() {
	var buf bytes.Buffer

	if _, err := NewStructure(2, 44100, 16, make([]byte, 44100*4)).WriteTo(&buf); err != nil {
		log.Fatal(err)
	}

	s, err := Parse(&buf)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d Hz, %.1f sec\n", s.ChannelCount(), s.SampleRate(), s.DurationSeconds())
	// Output: 2 channels, 44100 Hz, 1.0 sec
}
