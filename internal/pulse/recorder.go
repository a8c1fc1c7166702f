package pulse

// Recorder is an Emitter that records what it is asked to play instead of
// blocking. Elapsed accumulates the time a real emitter would have blocked.
type Recorder struct {
	Timings []Timing
	Pauses  []uint32
	Elapsed uint64 // µs
}

func (r *Recorder) Emit(t Timing) {
	r.Timings = append(r.Timings, t)
	r.Elapsed += uint64(t.Period())
}

func (r *Recorder) Pause(ms uint32) {
	r.Pauses = append(r.Pauses, ms)
	r.Elapsed += uint64(ms) * 1000
}

// Pulses returns the number of periods emitted so far.
func (r *Recorder) Pulses() int {
	return len(r.Timings)
}

// Reset clears everything recorded.
func (r *Recorder) Reset() {
	r.Timings = r.Timings[:0]
	r.Pauses = r.Pauses[:0]
	r.Elapsed = 0
}
