package chirp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSweep indicates chirp parameters outside their documented domain.
	ErrInvalidSweep = errors.New("chirp: invalid sweep")
	// ErrInvalidPhaseSweep indicates phaser parameters outside their documented domain.
	ErrInvalidPhaseSweep = errors.New("chirp: invalid phase sweep")
)

// Validate reports the first precondition s violates.
func (s Sweep) Validate() error {
	switch {
	case !(s.FStart > 0) || !(s.FStop > 0):
		return fmt.Errorf("%w: frequencies must be positive (%v, %v)", ErrInvalidSweep, s.FStart, s.FStop)
	case s.Steps < 0:
		return fmt.Errorf("%w: steps %d < 0", ErrInvalidSweep, s.Steps)
	case s.Periods < 1:
		return fmt.Errorf("%w: periods %d < 1", ErrInvalidSweep, s.Periods)
	case s.Chirps < 1:
		return fmt.Errorf("%w: chirps %d < 1", ErrInvalidSweep, s.Chirps)
	case s.Duty < 1 || s.Duty > 99:
		return fmt.Errorf("%w: duty %d outside 1..99", ErrInvalidSweep, s.Duty)
	}
	return nil
}

// Validate reports the first precondition p violates.
func (p PhaseSweep) Validate() error {
	switch {
	case !(p.Freq > 0):
		return fmt.Errorf("%w: frequency must be positive (%v)", ErrInvalidPhaseSweep, p.Freq)
	case p.Periods < 1:
		return fmt.Errorf("%w: periods %d < 1", ErrInvalidPhaseSweep, p.Periods)
	case p.Chirps < 1:
		return fmt.Errorf("%w: chirps %d < 1", ErrInvalidPhaseSweep, p.Chirps)
	case p.DutyStart < 1 || p.DutyEnd > 99 || p.DutyStart > p.DutyEnd:
		return fmt.Errorf("%w: duty range %d..%d not ascending within 1..99", ErrInvalidPhaseSweep, p.DutyStart, p.DutyEnd)
	}
	return nil
}
