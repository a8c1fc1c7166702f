// Package pulse turns pulse timings into edges on a single digital output.
package pulse

import "math"

// Pin is a single digital output line.
type Pin interface {
	Set(high bool)
}

// Clock provides the blocking holds between edges.
type Clock interface {
	SleepMicros(us uint32)
	SleepMillis(ms uint32)
}

// Timing is one square-wave period split into its high and low parts.
type Timing struct {
	OnMicros  uint32
	OffMicros uint32
}

// Period returns the full period in microseconds.
func (t Timing) Period() uint32 {
	return t.OnMicros + t.OffMicros
}

// TimingFor splits the period of freq (Hz) by duty (percent).
// The period is rounded to whole microseconds, so OnMicros+OffMicros equals
// round(1e6/freq). freq must be positive and duty within [1, 99].
func TimingFor(freq float64, duty int) Timing {
	return PeriodTiming(PeriodMicros(freq), duty)
}

// PeriodMicros returns the period of freq (Hz) rounded to whole microseconds.
func PeriodMicros(freq float64) uint32 {
	return uint32(math.Round(1e6 / freq))
}

// PeriodTiming splits an already computed period by duty (percent).
func PeriodTiming(period uint32, duty int) Timing {
	on := uint32(uint64(period) * uint64(duty) / 100)
	return Timing{OnMicros: on, OffMicros: period - on}
}

// Emitter is the sole component that produces sound: one call is one period.
type Emitter interface {
	// Emit drives the output active for t.OnMicros, then inactive for
	// t.OffMicros, blocking for the whole period.
	Emit(t Timing)
	// Pause keeps the output inactive for ms milliseconds.
	Pause(ms uint32)
}

// PinEmitter drives a Pin with holds from a Clock.
type PinEmitter struct {
	pin   Pin
	clock Clock
}

func NewPinEmitter(pin Pin, clock Clock) *PinEmitter {
	return &PinEmitter{pin: pin, clock: clock}
}

func (e *PinEmitter) Emit(t Timing) {
	e.pin.Set(true)
	e.clock.SleepMicros(t.OnMicros)
	e.pin.Set(false)
	e.clock.SleepMicros(t.OffMicros)
}

func (e *PinEmitter) Pause(ms uint32) {
	e.clock.SleepMillis(ms)
}
