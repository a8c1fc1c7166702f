// Package chirp plays frequency sweeps ("chirps") and duty-cycle sweeps
// ("phasers") as square waves through a pulse.Emitter.
//
// Both engines are fully synchronous: a call returns once every period and
// pause has been emitted. Numeric parameters are preconditions, not inputs
// to be recovered from; see Sweep.Validate and PhaseSweep.Validate. Builds
// tagged chirpdebug panic on violations, release builds play whatever the
// parameters produce.
package chirp

import (
	"context"
	"log/slog"

	"github.com/cbegin/chirpmaker-go/internal/freqgen"
	"github.com/cbegin/chirpmaker-go/internal/pulse"
)

// Sweep describes one chirp call.
type Sweep struct {
	FStart  float64 // Hz, > 0
	FStop   float64 // Hz, > 0
	Steps   int     // the range is divided into Steps steps; Steps+1 frequencies are played
	Periods int     // square-wave periods per step
	Chirps  int     // repetitions of the whole sweep
	Duty    int     // percent of each period the output is active, 1..99
	PauseMs uint32  // rest after every repetition
}

// PhaseSweep describes one phaser call: a fixed frequency whose duty cycle
// rises from DutyStart to DutyEnd in 1% steps.
type PhaseSweep struct {
	Freq      float64
	Periods   int
	DutyStart int
	DutyEnd   int
	Chirps    int
	PauseMs   uint32
}

// Engine renders sweeps on an emitter.
type Engine struct {
	emitter pulse.Emitter
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger logs every step at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func New(emitter pulse.Emitter, opts ...Option) *Engine {
	e := &Engine{emitter: emitter}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Chirp plays s.Chirps repetitions of the sweep shaped by gen. Each of the
// s.Steps+1 frequencies is held for s.Periods periods and every repetition
// is followed by a pause of s.PauseMs.
func (e *Engine) Chirp(s Sweep, gen freqgen.Generator) {
	assertValid(s.Validate())
	step := gen.Sweep(s.FStart, s.FStop, s.Steps)
	debug := e.debugEnabled()
	for n := 0; n < s.Chirps; n++ {
		for stepNbr := 0; stepNbr <= s.Steps; stepNbr++ {
			f := step(stepNbr)
			t := pulse.TimingFor(f, s.Duty)
			if debug {
				e.logger.Debug("chirp step", "step", stepNbr, "freq", f, "on_us", t.OnMicros, "off_us", t.OffMicros)
			}
			e.emitPeriods(t, s.Periods)
		}
		e.emitter.Pause(s.PauseMs)
	}
}

// Phaser plays p.Chirps repetitions of the duty sweep, each followed by a
// pause of p.PauseMs. The period is the same for every duty value.
func (e *Engine) Phaser(p PhaseSweep) {
	assertValid(p.Validate())
	period := pulse.PeriodMicros(p.Freq)
	debug := e.debugEnabled()
	for n := 0; n < p.Chirps; n++ {
		for duty := p.DutyStart; duty <= p.DutyEnd; duty++ {
			t := pulse.PeriodTiming(period, duty)
			if debug {
				e.logger.Debug("phaser step", "duty", duty, "on_us", t.OnMicros, "off_us", t.OffMicros)
			}
			e.emitPeriods(t, p.Periods)
		}
		e.emitter.Pause(p.PauseMs)
	}
}

// Rest keeps the output silent for ms milliseconds.
func (e *Engine) Rest(ms uint32) {
	e.emitter.Pause(ms)
}

func (e *Engine) emitPeriods(t pulse.Timing, periods int) {
	for i := 0; i < periods; i++ {
		e.emitter.Emit(t)
	}
}

func (e *Engine) debugEnabled() bool {
	return e.logger != nil && e.logger.Enabled(context.Background(), slog.LevelDebug)
}
