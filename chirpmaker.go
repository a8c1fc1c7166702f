// Package chirpmaker synthesizes bird calls on a piezo buzzer by sweeping the
// frequency and duty cycle of a square wave.
//
// A Maker needs an output: a pin and a clock (WithPin), or any pulse emitter
// (WithEmitter). Every call blocks until the sound has been played.
package chirpmaker

import (
	"context"
	"errors"
	"log/slog"

	intcat "github.com/cbegin/chirpmaker-go/internal/catalog"
	intchirp "github.com/cbegin/chirpmaker-go/internal/chirp"
	intconcert "github.com/cbegin/chirpmaker-go/internal/concert"
	intfreq "github.com/cbegin/chirpmaker-go/internal/freqgen"
	intpulse "github.com/cbegin/chirpmaker-go/internal/pulse"
	intrand "github.com/cbegin/chirpmaker-go/internal/random"
)

type (
	Sweep      = intchirp.Sweep
	PhaseSweep = intchirp.PhaseSweep
	Generator  = intfreq.Generator
	Shape      = intfreq.Shape
	Catalog    = intcat.Catalog
	Preset     = intcat.Preset
)

const (
	Linear        = intfreq.Linear
	Chromatic     = intfreq.Chromatic
	SinePi        = intfreq.SinePi
	Sine2Pi       = intfreq.Sine2Pi
	CosinePi      = intfreq.CosinePi
	Cosine2Pi     = intfreq.Cosine2Pi
	AtanPi        = intfreq.AtanPi
	Atan2Pi       = intfreq.Atan2Pi
	SincSymmetric = intfreq.SincSymmetric
	SincLeft      = intfreq.SincLeft
	SincRight     = intfreq.SincRight
)

// ErrNoOutput is returned by New when neither WithPin nor WithEmitter is given.
var ErrNoOutput = errors.New("chirpmaker: no output configured")

// namedCallPause is the rest after Cuckoo, Raven, Chaffinch and Blackbird.
const namedCallPause = 20

type Option func(*config)

type config struct {
	emitter intpulse.Emitter
	sampler intrand.Sampler
	seed    uint64
	logger  *slog.Logger
	birds   intcat.Catalog
	params  intconcert.Params
}

func defaultConfig() config {
	return config{
		seed:   1,
		birds:  intcat.Birds(),
		params: intconcert.DefaultParams(),
	}
}

// WithPin plays on a digital output with holds from clock.
func WithPin(pin intpulse.Pin, clock intpulse.Clock) Option {
	return func(cfg *config) {
		cfg.emitter = intpulse.NewPinEmitter(pin, clock)
	}
}

// WithEmitter plays through e, e.g. a pulse.Recorder.
func WithEmitter(e intpulse.Emitter) Option {
	return func(cfg *config) {
		cfg.emitter = e
	}
}

// WithSampler replaces the random source of the presets and the concert.
func WithSampler(s intrand.Sampler) Option {
	return func(cfg *config) {
		cfg.sampler = s
	}
}

// WithSeed seeds the default random source. Ignored with WithSampler.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithCatalog replaces the built-in birds.
func WithCatalog(c Catalog) Option {
	return func(cfg *config) {
		cfg.birds = c
	}
}

// WithConcertRange sets how many birds sing per concert, drawn from
// [minBirds, maxBirds).
func WithConcertRange(minBirds, maxBirds int) Option {
	return func(cfg *config) {
		cfg.params.Birds = intconcert.Range{Lo: minBirds, Hi: maxBirds}
	}
}

// WithConcertPause sets the closing pause of a Tick, drawn from [minMs, maxMs).
func WithConcertPause(minMs, maxMs int) Option {
	return func(cfg *config) {
		cfg.params.Pause = intconcert.Range{Lo: minMs, Hi: maxMs}
	}
}

// Maker plays sweeps and bird calls. It owns its output and is not safe for
// concurrent use.
type Maker struct {
	engine    *intchirp.Engine
	sampler   intrand.Sampler
	scheduler *intconcert.Scheduler
	birds     intcat.Catalog
	logger    *slog.Logger
}

func New(opts ...Option) (*Maker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.emitter == nil {
		return nil, ErrNoOutput
	}
	if cfg.sampler == nil {
		cfg.sampler = intrand.New(cfg.seed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	engine := intchirp.New(cfg.emitter, intchirp.WithLogger(cfg.logger))
	scheduler, err := intconcert.New(engine, cfg.sampler, cfg.birds, cfg.params, cfg.logger)
	if err != nil {
		return nil, err
	}
	return &Maker{
		engine:    engine,
		sampler:   cfg.sampler,
		scheduler: scheduler,
		birds:     cfg.birds,
		logger:    cfg.logger,
	}, nil
}

// Chirp plays a frequency sweep shaped by gen.
func (m *Maker) Chirp(s Sweep, gen Generator) {
	m.engine.Chirp(s, gen)
}

// Phaser plays a duty-cycle sweep at a fixed frequency.
func (m *Maker) Phaser(p PhaseSweep) {
	m.engine.Phaser(p)
}

// Catalog returns the birds this maker draws from.
func (m *Maker) Catalog() Catalog {
	return m.birds
}

// Perform plays one preset, sampling its ranged parameters.
func (m *Maker) Perform(p Preset) {
	intcat.Perform(m.engine, m.sampler, p)
}

// BirdVoice plays catalog entry i and then rests for pauseMs.
func (m *Maker) BirdVoice(i int, pauseMs uint32) error {
	return m.scheduler.Voice(i, pauseMs)
}

// BirdConcert lets randomly chosen birds sing, rests for pauseMs and
// returns the catalog indices that sang.
func (m *Maker) BirdConcert(pauseMs uint32) []int {
	return m.scheduler.Concert(pauseMs)
}

// Tick plays one concert closed by a random pause.
func (m *Maker) Tick() []int {
	return m.scheduler.Tick()
}

// Run plays concerts until ctx is cancelled.
func (m *Maker) Run(ctx context.Context) error {
	return m.scheduler.Run(ctx)
}

// Signet plays the start-up jingle.
func (m *Maker) Signet() {
	m.Perform(intcat.Signet())
}

// PhoneCall rings n times.
func (m *Maker) PhoneCall(n int) {
	m.Perform(intcat.PhoneCall(n))
}

func (m *Maker) Cuckoo() error    { return m.named("cuckoo") }
func (m *Maker) Raven() error     { return m.named("raven") }
func (m *Maker) Chaffinch() error { return m.named("chaffinch") }
func (m *Maker) Blackbird() error { return m.named("blackbird") }

func (m *Maker) named(name string) error {
	i, err := m.birds.Index(name)
	if err != nil {
		return err
	}
	return m.BirdVoice(i, namedCallPause)
}
