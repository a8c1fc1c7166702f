// Package random supplies the uniform integer sampler the presets draw
// their parameters from.
package random

import "math/rand/v2"

// Sampler draws integers uniformly from [lo, hi). When hi <= lo it returns
// lo, so a range written with reversed bounds behaves as a fixed value.
type Sampler interface {
	InRange(lo, hi int) int
}

// Source is a Sampler backed by a seeded PCG generator.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds give equal sequences.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) InRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo)
}

// Fixed is a Sampler that always returns the low bound. Useful for
// reproducing the nominal form of a preset.
type Fixed struct{}

func (Fixed) InRange(lo, _ int) int {
	return lo
}
