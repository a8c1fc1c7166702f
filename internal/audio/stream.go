package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

type SampleSource interface {
	Process(dst []float32)
}

// FinishingSource is a SampleSource that can signal when playback has ended.
// When Finished returns true, the stream will return io.EOF on the next Read.
type FinishingSource interface {
	SampleSource
	Finished() bool
}

// Sink plays rendered stereo frames. Play blocks until the frames have been
// heard or ctx is cancelled.
type Sink interface {
	Play(ctx context.Context, samples []float32) error
	Close() error
}

// bufferSource serves a fixed block of frames and pads with silence.
type bufferSource struct {
	samples []float32
	pos     int
}

func (s *bufferSource) Process(dst []float32) {
	n := copy(dst, s.samples[s.pos:])
	s.pos += n
	clear(dst[n:])
}

func (s *bufferSource) Finished() bool {
	return s.pos >= len(s.samples)
}

// StreamReader adapts a SampleSource to little-endian float32 bytes.
type StreamReader struct {
	mu     sync.Mutex
	source SampleSource
	buf    []float32
}

func NewStreamReader(source SampleSource) *StreamReader {
	return &StreamReader{source: source}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i := 0; i < need; i++ {
		u := math.Float32bits(r.buf[i])
		binary.LittleEndian.PutUint32(p[i*4:], u)
	}
	n := frames * 8
	if fs, ok := r.source.(FinishingSource); ok && fs.Finished() {
		return n, io.EOF
	}
	return n, nil
}

func (r *StreamReader) Close() error { return nil }

const pollInterval = 10 * time.Millisecond

// waitPlaying polls until isPlaying reports false or ctx ends.
func waitPlaying(ctx context.Context, isPlaying func() bool) error {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for isPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// EbitenSink plays through the ebiten audio context.
type EbitenSink struct {
	ctx *ebitaudio.Context
}

func NewEbitenSink(sampleRate int) (*EbitenSink, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	return &EbitenSink{ctx: ctx}, nil
}

func (s *EbitenSink) Play(ctx context.Context, samples []float32) error {
	if len(samples) == 0 {
		return nil
	}
	reader := NewStreamReader(&bufferSource{samples: samples})
	pl, err := s.ctx.NewPlayerF32(reader)
	if err != nil {
		return err
	}
	defer pl.Close()
	pl.Play()
	return waitPlaying(ctx, pl.IsPlaying)
}

func (s *EbitenSink) Close() error { return nil }
