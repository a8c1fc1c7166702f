package audio

import (
	"context"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays through a dedicated oto context. Only one oto context may
// exist per process, so an OtoSink cannot be combined with an EbitenSink.
type OtoSink struct {
	ctx *oto.Context
}

func NewOtoSink(sampleRate int) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &OtoSink{ctx: ctx}, nil
}

func (s *OtoSink) Play(ctx context.Context, samples []float32) error {
	if len(samples) == 0 {
		return nil
	}
	pl := s.ctx.NewPlayer(NewStreamReader(&bufferSource{samples: samples}))
	defer pl.Close()
	pl.Play()
	return waitPlaying(ctx, pl.IsPlaying)
}

func (s *OtoSink) Close() error {
	return s.ctx.Suspend()
}
