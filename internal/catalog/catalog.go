// Package catalog holds bird calls as declarative data.
//
// A Preset is a short program of chirp, phaser and rest calls. Numeric
// parameters are either fixed or a uniform range that is sampled anew every
// time the preset is performed, so no two performances sound identical.
package catalog

import (
	"fmt"

	"github.com/cbegin/chirpmaker-go/internal/chirp"
	"github.com/cbegin/chirpmaker-go/internal/freqgen"
	"github.com/cbegin/chirpmaker-go/internal/random"
)

// Value is a preset parameter: Lo when fixed, otherwise sampled from [Lo, Hi).
type Value struct {
	Lo, Hi float64
	Ranged bool
}

// Fix returns a fixed value.
func Fix(v float64) Value {
	return Value{Lo: v}
}

// Rand returns a value drawn from [lo, hi) on every performance. As with the
// sampler, reversed bounds always yield lo.
func Rand(lo, hi float64) Value {
	return Value{Lo: lo, Hi: hi, Ranged: true}
}

// Sample resolves v. Ranged values are drawn as integers.
func (v Value) Sample(s random.Sampler) float64 {
	if !v.Ranged {
		return v.Lo
	}
	return float64(s.InRange(int(v.Lo), int(v.Hi)))
}

func (v Value) String() string {
	if v.Ranged {
		return fmt.Sprintf("[%g, %g)", v.Lo, v.Hi)
	}
	return fmt.Sprintf("%g", v.Lo)
}

// Kind is the engine operation a Call performs.
type Kind int

const (
	KindChirp Kind = iota
	KindPhaser
	KindRest
)

// Call is one step of a preset. Chirp uses FStart, FStop, Steps, Periods,
// Chirps, Duty, Pause and the generator; phaser uses Freq, Periods,
// DutyStart, DutyEnd, Chirps and Pause; rest uses Pause only.
type Call struct {
	Kind  Kind          `yaml:"kind"`
	Shape freqgen.Shape `yaml:"shape,omitempty"`
	NPi   int           `yaml:"n_pi,omitempty"`

	FStart  Value `yaml:"f_start,omitempty"`
	FStop   Value `yaml:"f_stop,omitempty"`
	Steps   Value `yaml:"steps,omitempty"`
	Periods Value `yaml:"periods,omitempty"`
	Chirps  Value `yaml:"chirps,omitempty"`
	Duty    Value `yaml:"duty,omitempty"`

	Freq      Value `yaml:"freq,omitempty"`
	DutyStart Value `yaml:"duty_start,omitempty"`
	DutyEnd   Value `yaml:"duty_end,omitempty"`

	Pause Value `yaml:"pause_ms,omitempty"`
}

// Generator returns the frequency generator of a chirp call.
func (c Call) Generator() freqgen.Generator {
	return freqgen.Generator{Shape: c.Shape, NPi: c.NPi}
}

// Sweep samples the parameters of a chirp call.
func (c Call) Sweep(s random.Sampler) chirp.Sweep {
	return chirp.Sweep{
		FStart:  c.FStart.Sample(s),
		FStop:   c.FStop.Sample(s),
		Steps:   int(c.Steps.Sample(s)),
		Periods: int(c.Periods.Sample(s)),
		Chirps:  int(c.Chirps.Sample(s)),
		Duty:    int(c.Duty.Sample(s)),
		PauseMs: uint32(c.Pause.Sample(s)),
	}
}

// PhaseSweep samples the parameters of a phaser call.
func (c Call) PhaseSweep(s random.Sampler) chirp.PhaseSweep {
	return chirp.PhaseSweep{
		Freq:      c.Freq.Sample(s),
		Periods:   int(c.Periods.Sample(s)),
		DutyStart: int(c.DutyStart.Sample(s)),
		DutyEnd:   int(c.DutyEnd.Sample(s)),
		Chirps:    int(c.Chirps.Sample(s)),
		PauseMs:   uint32(c.Pause.Sample(s)),
	}
}

// Preset is a named bird call. Calls are played Repeat times (once when
// Repeat is 0), then the output rests for RestMs.
type Preset struct {
	Name   string `yaml:"name"`
	Repeat int    `yaml:"repeat,omitempty"`
	RestMs uint32 `yaml:"rest_ms,omitempty"`
	Calls  []Call `yaml:"calls"`
}

// Perform samples and plays every call of p on e. Calls of an unknown kind
// are skipped; debug builds panic on them.
func Perform(e *chirp.Engine, s random.Sampler, p Preset) {
	repeat := p.Repeat
	if repeat < 1 {
		repeat = 1
	}
	for i := 0; i < repeat; i++ {
		for _, c := range p.Calls {
			switch c.Kind {
			case KindChirp:
				e.Chirp(c.Sweep(s), c.Generator())
			case KindPhaser:
				e.Phaser(c.PhaseSweep(s))
			case KindRest:
				e.Rest(uint32(c.Pause.Sample(s)))
			default:
				assertValid(fmt.Errorf("%w: %s call of %s", ErrInvalidCall, c.Kind, p.Name))
			}
		}
	}
	if p.RestMs > 0 {
		e.Rest(p.RestMs)
	}
}

// Catalog is an ordered list of presets addressed by index.
type Catalog []Preset

// Index returns the position of the preset called name.
func (c Catalog) Index(name string) (int, error) {
	for i, p := range c {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// At returns the preset at index i.
func (c Catalog) At(i int) (Preset, error) {
	if i < 0 || i >= len(c) {
		return Preset{}, fmt.Errorf("%w: %d not in [0, %d)", ErrPresetIndex, i, len(c))
	}
	return c[i], nil
}

// Names lists the preset names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.Name
	}
	return out
}
