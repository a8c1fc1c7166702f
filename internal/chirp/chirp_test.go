package chirp

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/chirpmaker-go/internal/freqgen"
	"github.com/cbegin/chirpmaker-go/internal/pulse"
)

func TestChirpOneHertzEmitsTwoHalfSecondPulses(t *testing.T) {
	rec := &pulse.Recorder{}
	New(rec).Chirp(Sweep{FStart: 1, FStop: 1, Steps: 1, Periods: 1, Chirps: 1, Duty: 50}, freqgen.Of(freqgen.Linear))

	want := pulse.Timing{OnMicros: 500000, OffMicros: 500000}
	assert.Equal(t, []pulse.Timing{want, want}, rec.Timings)
	assert.Equal(t, []uint32{0}, rec.Pauses)
	assert.Equal(t, uint64(2000000), rec.Elapsed)
}

func TestChirpChromaticOctaveDown(t *testing.T) {
	rec := &pulse.Recorder{}
	New(rec).Chirp(Sweep{FStart: 880, FStop: 440, Steps: 12, Periods: 10, Chirps: 1, Duty: 50}, freqgen.Of(freqgen.Chromatic))

	require.Equal(t, 13*10, rec.Pulses())
	var periods []uint32
	for i := 0; i < len(rec.Timings); i += 10 {
		step := rec.Timings[i : i+10]
		for _, tm := range step {
			require.Equal(t, step[0], tm, "all periods of a step share their timing")
		}
		periods = append(periods, step[0].Period())
	}
	assert.Equal(t, uint32(1136), periods[0])
	assert.Equal(t, uint32(2273), periods[12])
	for i := 1; i < len(periods); i++ {
		assert.Greater(t, periods[i], periods[i-1], "frequency must fall at step %d", i)
	}
}

func TestChirpPulseCountAndElapsed(t *testing.T) {
	cases := []struct {
		name  string
		sweep Sweep
		gen   freqgen.Generator
	}{
		{"linear", Sweep{FStart: 1280, FStop: 1620, Steps: 10, Periods: 4, Chirps: 3, Duty: 50, PauseMs: 150}, freqgen.Of(freqgen.Linear)},
		{"atan", Sweep{FStart: 75, FStop: 65, Steps: 8, Periods: 4, Chirps: 2, Duty: 20, PauseMs: 550}, freqgen.Of(freqgen.AtanPi)},
		{"sine2pi", Sweep{FStart: 1500, FStop: 4500, Steps: 50, Periods: 1, Chirps: 1, Duty: 50, PauseMs: 100}, freqgen.Of(freqgen.Sine2Pi)},
		{"sinc", Sweep{FStart: 4000, FStop: 4800, Steps: 20, Periods: 3, Chirps: 2, Duty: 30, PauseMs: 5}, freqgen.Sinc(freqgen.SincSymmetric, 2)},
		{"zero steps", Sweep{FStart: 667, FStop: 557, Steps: 0, Periods: 46, Chirps: 1, Duty: 50, PauseMs: 200}, freqgen.Of(freqgen.Chromatic)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &pulse.Recorder{}
			New(rec).Chirp(tc.sweep, tc.gen)

			s := tc.sweep
			require.Equal(t, s.Chirps*(s.Steps+1)*s.Periods, rec.Pulses())
			require.Len(t, rec.Pauses, s.Chirps)

			// Recompute the expected blocking time independently.
			var want uint64
			for n := 0; n < s.Chirps; n++ {
				for step := 0; step <= s.Steps; step++ {
					f := tc.gen.Generate(step, s.FStart, s.FStop, s.Steps)
					want += uint64(math.Round(1e6/f)) * uint64(s.Periods)
				}
			}
			want += uint64(s.Chirps) * uint64(s.PauseMs) * 1000
			assert.Equal(t, want, rec.Elapsed)
		})
	}
}

func TestPhaserSweepsDutyAtFixedPeriod(t *testing.T) {
	rec := &pulse.Recorder{}
	New(rec).Phaser(PhaseSweep{Freq: 500, Periods: 1, DutyStart: 1, DutyEnd: 99, Chirps: 1})

	require.Equal(t, 99, rec.Pulses())
	for i, tm := range rec.Timings {
		assert.Equal(t, uint32(2000), tm.Period())
		assert.Equal(t, uint32(20*(i+1)), tm.OnMicros)
		if i > 0 {
			assert.Greater(t, tm.OnMicros, rec.Timings[i-1].OnMicros)
		}
	}
	assert.Equal(t, []uint32{0}, rec.Pauses)
}

func TestPhaserPausesAfterEveryRepetition(t *testing.T) {
	rec := &pulse.Recorder{}
	New(rec).Phaser(PhaseSweep{Freq: 1700, Periods: 3, DutyStart: 5, DutyEnd: 30, Chirps: 4, PauseMs: 120})

	assert.Equal(t, 4*26*3, rec.Pulses())
	assert.Equal(t, []uint32{120, 120, 120, 120}, rec.Pauses)
}

func TestChirpLogsStepsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rec := &pulse.Recorder{}
	New(rec, WithLogger(logger)).Chirp(Sweep{FStart: 1000, FStop: 2000, Steps: 2, Periods: 1, Chirps: 1, Duty: 50}, freqgen.Of(freqgen.Linear))

	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("chirp step")))
	assert.Contains(t, buf.String(), "on_us=500")

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, nil))
	New(rec, WithLogger(quiet)).Chirp(Sweep{FStart: 1000, FStop: 2000, Steps: 2, Periods: 1, Chirps: 1, Duty: 50}, freqgen.Of(freqgen.Linear))
	assert.Zero(t, buf.Len())
}

func TestSweepValidate(t *testing.T) {
	ok := Sweep{FStart: 440, FStop: 880, Steps: 4, Periods: 1, Chirps: 1, Duty: 50}
	require.NoError(t, ok.Validate())

	bad := []func(*Sweep){
		func(s *Sweep) { s.FStart = 0 },
		func(s *Sweep) { s.FStop = -1 },
		func(s *Sweep) { s.FStop = math.NaN() },
		func(s *Sweep) { s.Steps = -1 },
		func(s *Sweep) { s.Periods = 0 },
		func(s *Sweep) { s.Chirps = 0 },
		func(s *Sweep) { s.Duty = 0 },
		func(s *Sweep) { s.Duty = 100 },
	}
	for i, mutate := range bad {
		s := ok
		mutate(&s)
		assert.ErrorIs(t, s.Validate(), ErrInvalidSweep, "case %d", i)
	}
}

func TestPhaseSweepValidate(t *testing.T) {
	ok := PhaseSweep{Freq: 3500, Periods: 6, DutyStart: 5, DutyEnd: 50, Chirps: 3}
	require.NoError(t, ok.Validate())

	descending := ok
	descending.DutyStart, descending.DutyEnd = 50, 5
	assert.ErrorIs(t, descending.Validate(), ErrInvalidPhaseSweep)

	silent := ok
	silent.Freq = 0
	assert.ErrorIs(t, silent.Validate(), ErrInvalidPhaseSweep)
}
