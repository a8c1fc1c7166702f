// Package concert lets randomly chosen birds of a catalog sing in turn.
package concert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cbegin/chirpmaker-go/internal/catalog"
	"github.com/cbegin/chirpmaker-go/internal/chirp"
	"github.com/cbegin/chirpmaker-go/internal/random"
)

// Range is a half-open integer interval [Lo, Hi) handed to the sampler.
type Range struct {
	Lo, Hi int
}

type Params struct {
	Birds Range // how many birds sing per concert
	Pause Range // ms of silence closing a concert, used by Run
}

func DefaultParams() Params {
	return Params{
		Birds: Range{Lo: 4, Hi: 13},
		Pause: Range{Lo: 1000, Hi: 5000},
	}
}

// Scheduler picks presets at random and performs them on one engine.
// It is not safe for concurrent use; a concert owns the output.
type Scheduler struct {
	engine  *chirp.Engine
	sampler random.Sampler
	birds   catalog.Catalog
	params  Params
	logger  *slog.Logger
}

func New(engine *chirp.Engine, sampler random.Sampler, birds catalog.Catalog, params Params, logger *slog.Logger) (*Scheduler, error) {
	if len(birds) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if params.Birds.Lo < 0 || params.Pause.Lo < 0 {
		return nil, fmt.Errorf("%w: birds %v, pause %v", ErrInvalidParams, params.Birds, params.Pause)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		engine:  engine,
		sampler: sampler,
		birds:   birds,
		params:  params,
		logger:  logger,
	}, nil
}

// Voice performs the preset at index i and then rests for pauseMs.
func (s *Scheduler) Voice(i int, pauseMs uint32) error {
	p, err := s.birds.At(i)
	if err != nil {
		return err
	}
	s.sing(i, p)
	s.engine.Rest(pauseMs)
	return nil
}

// Concert lets a random number of randomly chosen birds sing, then rests for
// pauseMs. It returns the indices of the birds in the order they sang.
func (s *Scheduler) Concert(pauseMs uint32) []int {
	n := s.sampler.InRange(s.params.Birds.Lo, s.params.Birds.Hi)
	sang := make([]int, 0, n)
	for i := 0; i < n; i++ {
		b := s.sampler.InRange(0, len(s.birds))
		s.sing(b, s.birds[b])
		sang = append(sang, b)
	}
	s.engine.Rest(pauseMs)
	return sang
}

// Tick runs one concert closed by a pause drawn from Params.Pause.
func (s *Scheduler) Tick() []int {
	pause := s.sampler.InRange(s.params.Pause.Lo, s.params.Pause.Hi)
	return s.Concert(uint32(pause))
}

// Run ticks until ctx is cancelled. Cancellation is observed between
// concerts; a concert in progress always completes.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()
	}
}

func (s *Scheduler) sing(i int, p catalog.Preset) {
	s.logger.Info("bird is singing", "bird", i, "name", p.Name)
	catalog.Perform(s.engine, s.sampler, p)
}
