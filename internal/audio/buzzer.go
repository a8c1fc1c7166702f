package audio

import "time"

type Params struct {
	SampleRate int
	Gain       float64 // output level while the pin is high
	DCBlock    bool    // remove the DC offset of the unipolar drive
}

func DefaultParams() Params {
	return Params{
		SampleRate: 48000,
		Gain:       0.35,
		DCBlock:    true,
	}
}

// Buzzer is a virtual piezo: it implements pulse.Pin and pulse.Clock and
// renders the pin level over virtual time into interleaved stereo float32
// frames. Holds never block, and pitch is exact to one sample.
type Buzzer struct {
	params    Params
	high      bool
	elapsedUs uint64
	frames    uint64
	samples   []float32
	dcPrevIn  float64
	dcPrevOut float64
}

func NewBuzzer(params Params) *Buzzer {
	if params.SampleRate <= 0 {
		params.SampleRate = DefaultParams().SampleRate
	}
	return &Buzzer{params: params}
}

func (b *Buzzer) Set(high bool) {
	b.high = high
}

func (b *Buzzer) SleepMicros(us uint32) {
	b.advance(uint64(us))
}

func (b *Buzzer) SleepMillis(ms uint32) {
	b.advance(uint64(ms) * 1000)
}

// Elapsed returns the virtual time rendered so far.
func (b *Buzzer) Elapsed() time.Duration {
	return time.Duration(b.elapsedUs) * time.Microsecond
}

// Take returns the frames rendered since the previous Take and releases
// them. The virtual clock keeps running.
func (b *Buzzer) Take() []float32 {
	out := b.samples
	b.samples = nil
	return out
}

func (b *Buzzer) advance(us uint64) {
	b.elapsedUs += us
	target := b.elapsedUs * uint64(b.params.SampleRate) / 1_000_000
	level := 0.0
	if b.high {
		level = b.params.Gain
	}
	for ; b.frames < target; b.frames++ {
		v := level
		if b.params.DCBlock {
			v = b.dcBlock(v)
		}
		s := float32(clamp(v, -1, 1))
		b.samples = append(b.samples, s, s)
	}
}

func (b *Buzzer) dcBlock(x float64) float64 {
	const r = 0.995
	y := x - b.dcPrevIn + r*b.dcPrevOut
	b.dcPrevIn = x
	b.dcPrevOut = y
	return y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
