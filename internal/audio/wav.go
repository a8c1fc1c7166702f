package audio

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// WriteWAV encodes interleaved float32 frames as 16-bit PCM.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate, channels int) error {
	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, channels, 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(clamp(float64(s), -1, 1) * math.MaxInt16))
	}
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}
	return nil
}

// WAVSink collects everything played and writes it to a file on Close.
type WAVSink struct {
	path       string
	sampleRate int
	samples    []float32
}

func NewWAVSink(path string, sampleRate int) *WAVSink {
	return &WAVSink{path: path, sampleRate: sampleRate}
}

func (s *WAVSink) Play(_ context.Context, samples []float32) error {
	s.samples = append(s.samples, samples...)
	return nil
}

func (s *WAVSink) Close() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, s.samples, s.sampleRate, 2); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
