package chirpmaker

import (
	"io"

	intaudio "github.com/cbegin/chirpmaker-go/internal/audio"
	intpulse "github.com/cbegin/chirpmaker-go/internal/pulse"
)

// AudioParams configures the virtual buzzer used by Render and RenderWAV.
type AudioParams = intaudio.Params

// DefaultAudioParams returns 48 kHz output at a moderate level with the DC
// blocker on.
func DefaultAudioParams() AudioParams {
	return intaudio.DefaultParams()
}

// Render plays through a virtual buzzer and returns the interleaved stereo
// frames play produced. opts must not configure another output.
func Render(params AudioParams, play func(*Maker) error, opts ...Option) ([]float32, error) {
	b := intaudio.NewBuzzer(params)
	m, err := New(append(opts, WithPin(b, b))...)
	if err != nil {
		return nil, err
	}
	if err := play(m); err != nil {
		return nil, err
	}
	return b.Take(), nil
}

// RenderWAV renders like Render and encodes the result as 16-bit PCM.
func RenderWAV(w io.WriteSeeker, params AudioParams, play func(*Maker) error, opts ...Option) error {
	if params.SampleRate <= 0 {
		params.SampleRate = intaudio.DefaultParams().SampleRate
	}
	samples, err := Render(params, play, opts...)
	if err != nil {
		return err
	}
	return intaudio.WriteWAV(w, samples, params.SampleRate, 2)
}

// Measure plays without sound and reports the number of periods and the
// time a real output would have been busy.
func Measure(play func(*Maker) error, opts ...Option) (pulses int, elapsedUs uint64, err error) {
	rec := &intpulse.Recorder{}
	m, err := New(append(opts, WithEmitter(rec))...)
	if err != nil {
		return 0, 0, err
	}
	if err := play(m); err != nil {
		return 0, 0, err
	}
	return rec.Pulses(), rec.Elapsed, nil
}
