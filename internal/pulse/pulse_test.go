package pulse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracePin records every edge and hold in order.
type tracePin struct {
	trace []string
}

func (p *tracePin) Set(high bool)         { p.trace = append(p.trace, fmt.Sprintf("set %v", high)) }
func (p *tracePin) SleepMicros(us uint32) { p.trace = append(p.trace, fmt.Sprintf("us %d", us)) }
func (p *tracePin) SleepMillis(ms uint32) { p.trace = append(p.trace, fmt.Sprintf("ms %d", ms)) }

func TestPinEmitterOrdersEdgesAndHolds(t *testing.T) {
	p := &tracePin{}
	e := NewPinEmitter(p, p)
	e.Emit(Timing{OnMicros: 300, OffMicros: 700})
	e.Pause(20)
	assert.Equal(t, []string{"set true", "us 300", "set false", "us 700", "ms 20"}, p.trace)
}

func TestTimingForSplitsRoundedPeriod(t *testing.T) {
	cases := []struct {
		freq   float64
		duty   int
		on     uint32
		off    uint32
		period uint32
	}{
		{1, 50, 500000, 500000, 1000000},
		{500, 1, 20, 1980, 2000},
		{500, 99, 1980, 20, 2000},
		{3000, 50, 166, 167, 333},
		{440, 20, 454, 1819, 2273},
		{75, 20, 2666, 10667, 13333},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%vHz_%d", tc.freq, tc.duty), func(t *testing.T) {
			got := TimingFor(tc.freq, tc.duty)
			assert.Equal(t, tc.on, got.OnMicros)
			assert.Equal(t, tc.off, got.OffMicros)
			assert.Equal(t, tc.period, got.Period())
		})
	}
}

func TestTimingForDutyInvariant(t *testing.T) {
	for _, freq := range []float64{65, 440, 1320.5, 4484, 5900} {
		for duty := 1; duty <= 99; duty++ {
			got := TimingFor(freq, duty)
			period := 1e6 / freq
			require.InDelta(t, period, float64(got.Period()), 1, "freq %v duty %d", freq, duty)
			require.InDelta(t, float64(duty)/100, float64(got.OnMicros)/period, 1.5/period)
		}
	}
}

func TestRecorderAccumulates(t *testing.T) {
	r := &Recorder{}
	r.Emit(Timing{OnMicros: 10, OffMicros: 30})
	r.Emit(Timing{OnMicros: 20, OffMicros: 20})
	r.Pause(3)
	assert.Equal(t, 2, r.Pulses())
	assert.Equal(t, uint64(3080), r.Elapsed)
	assert.Equal(t, []uint32{3}, r.Pauses)

	r.Reset()
	assert.Zero(t, r.Pulses())
	assert.Zero(t, r.Elapsed)
}
