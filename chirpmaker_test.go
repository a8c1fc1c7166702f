package chirpmaker

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intaudio "github.com/cbegin/chirpmaker-go/internal/audio"
	intcat "github.com/cbegin/chirpmaker-go/internal/catalog"
	intconcert "github.com/cbegin/chirpmaker-go/internal/concert"
	intpulse "github.com/cbegin/chirpmaker-go/internal/pulse"
	intrand "github.com/cbegin/chirpmaker-go/internal/random"
)

func TestNewRequiresOutput(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrNoOutput)

	_, err = New(WithEmitter(&intpulse.Recorder{}), WithCatalog(Catalog{}))
	assert.ErrorIs(t, err, intcat.ErrEmptyCatalog)
}

func TestMeasureOneHertzChirp(t *testing.T) {
	pulses, elapsed, err := Measure(func(m *Maker) error {
		m.Chirp(Sweep{FStart: 1, FStop: 1, Steps: 1, Periods: 1, Chirps: 1, Duty: 50}, Generator{Shape: Linear})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, pulses)
	assert.Equal(t, uint64(2000000), elapsed)
}

func TestNamedCallsRestAfterwards(t *testing.T) {
	rec := &intpulse.Recorder{}
	m, err := New(WithEmitter(rec), WithSampler(intrand.Fixed{}))
	require.NoError(t, err)

	require.NoError(t, m.Raven())
	assert.Equal(t, []uint32{550, 550, 20}, rec.Pauses)

	rec.Reset()
	require.NoError(t, m.Cuckoo())
	assert.Equal(t, uint32(300), rec.Pauses[len(rec.Pauses)-2])
	assert.Equal(t, uint32(20), rec.Pauses[len(rec.Pauses)-1])

	for _, call := range []func() error{m.Chaffinch, m.Blackbird} {
		rec.Reset()
		require.NoError(t, call())
		assert.NotZero(t, rec.Pulses())
	}
}

func TestNamedCallMissingFromCatalog(t *testing.T) {
	only := intcat.Birds()[:3]
	m, err := New(WithEmitter(&intpulse.Recorder{}), WithCatalog(only))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Raven(), intcat.ErrUnknownPreset)
	assert.ErrorIs(t, m.BirdVoice(3, 0), intcat.ErrPresetIndex)
}

func TestSignetAndPhoneCall(t *testing.T) {
	rec := &intpulse.Recorder{}
	m, err := New(WithEmitter(rec))
	require.NoError(t, err)
	m.Signet()
	assert.Equal(t, []uint32{1000, 3000}, rec.Pauses)

	rec.Reset()
	m.PhoneCall(2)
	assert.Equal(t, 2*3*20, rec.Pulses())
}

func TestConcertIsReproducibleFromSeed(t *testing.T) {
	run := func() (int, uint64) {
		pulses, elapsed, err := Measure(func(m *Maker) error {
			m.Tick()
			return nil
		}, WithSeed(2021), WithConcertRange(2, 4))
		require.NoError(t, err)
		return pulses, elapsed
	}
	p1, e1 := run()
	p2, e2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, e1, e2)
	assert.NotZero(t, p1)
}

func TestConcertLogsEverySinger(t *testing.T) {
	var logs bytes.Buffer
	m, err := New(
		WithEmitter(&intpulse.Recorder{}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithConcertRange(3, 4),
	)
	require.NoError(t, err)
	sang := m.BirdConcert(0)
	require.Len(t, sang, 3)
	assert.Equal(t, 3, bytes.Count(logs.Bytes(), []byte("bird is singing")))
}

func TestRenderMatchesVirtualTime(t *testing.T) {
	params := intaudio.Params{SampleRate: 8000, Gain: 0.5}
	samples, err := Render(params, func(m *Maker) error {
		m.Phaser(PhaseSweep{Freq: 500, Periods: 1, DutyStart: 1, DutyEnd: 99, Chirps: 1, PauseMs: 5})
		return nil
	})
	require.NoError(t, err)
	// 99 periods of 2000µs plus a 5ms pause at 8 frames per ms.
	assert.Len(t, samples, 2*(99*2000+5000)*8/1000)
}

func TestRenderWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signet.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	err = RenderWAV(f, intaudio.Params{SampleRate: 16000, Gain: 0.3, DCBlock: true}, func(m *Maker) error {
		m.PhoneCall(1)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	require.NoError(t, dec.Err())
	assert.Equal(t, uint32(16000), dec.SampleRate)
	assert.Equal(t, uint16(2), dec.NumChans)
}

func TestNewRejectsNegativeConcertRange(t *testing.T) {
	_, err := New(WithEmitter(&intpulse.Recorder{}), WithConcertRange(-2, -1))
	assert.ErrorIs(t, err, intconcert.ErrInvalidParams)
}
