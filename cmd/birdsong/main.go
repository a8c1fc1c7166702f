package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cbegin/chirpmaker-go"
	intaudio "github.com/cbegin/chirpmaker-go/internal/audio"
	intcat "github.com/cbegin/chirpmaker-go/internal/catalog"
	intfreq "github.com/cbegin/chirpmaker-go/internal/freqgen"
	intpulse "github.com/cbegin/chirpmaker-go/internal/pulse"
)

type options struct {
	mode       string
	backend    string
	out        string
	sampleRate int
	gain       float64
	seed       uint64
	catalog    string
	bird       string
	concerts   int
	rings      int
	logLevel   string

	sweep  chirpmaker.Sweep
	shape  string
	nPi    int
	phaser chirpmaker.PhaseSweep
}

func main() {
	var o options
	flag.StringVar(&o.mode, "mode", "concert", "what to play: concert|bird|signet|phone|sweep|phaser|list|dump")
	flag.StringVar(&o.backend, "backend", "ebiten", "output: ebiten|oto|wav|dry")
	flag.StringVar(&o.out, "out", "birdsong.wav", "output file for -backend wav")
	flag.IntVar(&o.sampleRate, "sample-rate", 48000, "output sample rate")
	flag.Float64Var(&o.gain, "gain", intaudio.DefaultParams().Gain, "buzzer level (0..1)")
	flag.Uint64Var(&o.seed, "seed", 0, "random seed (0 = time based)")
	flag.StringVar(&o.catalog, "catalog", "", "YAML catalog replacing the built-in birds")
	flag.StringVar(&o.bird, "bird", "cuckoo", "catalog name or index for -mode bird")
	flag.IntVar(&o.concerts, "concerts", 1, "concerts to play in -mode concert (0 = until interrupted)")
	flag.IntVar(&o.rings, "rings", 3, "rings for -mode phone")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug|info|warn|error")

	flag.Float64Var(&o.sweep.FStart, "f-start", 1000, "sweep: start frequency (Hz)")
	flag.Float64Var(&o.sweep.FStop, "f-stop", 2000, "sweep: stop frequency (Hz)")
	flag.IntVar(&o.sweep.Steps, "steps", 10, "sweep: number of steps")
	flag.IntVar(&o.sweep.Periods, "periods", 10, "sweep/phaser: periods per step")
	flag.IntVar(&o.sweep.Chirps, "chirps", 1, "sweep/phaser: repetitions")
	flag.IntVar(&o.sweep.Duty, "duty", 50, "sweep: duty cycle (1..99 %)")
	pause := flag.Uint("pause", 50, "sweep/phaser: ms pause after each repetition")
	flag.StringVar(&o.shape, "shape", "chromatic", "sweep: "+shapeList())
	flag.IntVar(&o.nPi, "npi", 2, "sweep: sinc window in multiples of π")
	flag.Float64Var(&o.phaser.Freq, "freq", 3500, "phaser: frequency (Hz)")
	flag.IntVar(&o.phaser.DutyStart, "duty-start", 5, "phaser: first duty cycle")
	flag.IntVar(&o.phaser.DutyEnd, "duty-end", 50, "phaser: last duty cycle")
	flag.Parse()

	o.sweep.PauseMs = uint32(*pause)
	o.phaser.Periods = o.sweep.Periods
	o.phaser.Chirps = o.sweep.Chirps
	o.phaser.PauseMs = o.sweep.PauseMs

	if err := run(o); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(o options) error {
	logger, err := newLogger(o.logLevel)
	if err != nil {
		return err
	}
	birds := intcat.Birds()
	if o.catalog != "" {
		if birds, err = intcat.LoadFile(o.catalog); err != nil {
			return err
		}
	}
	switch o.mode {
	case "list":
		for i, name := range birds.Names() {
			fmt.Printf("%2d %s\n", i, name)
		}
		return nil
	case "dump":
		return intcat.Write(os.Stdout, birds)
	}

	work, err := workFor(o, birds)
	if err != nil {
		return err
	}
	sink, err := newSink(o)
	if err != nil {
		return err
	}
	defer func() {
		if sink != nil {
			if err := sink.Close(); err != nil {
				logger.Error("closing output", "err", err)
			}
		}
	}()

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var (
		buzzer *intaudio.Buzzer
		rec    *intpulse.Recorder
		output chirpmaker.Option
	)
	if sink == nil {
		rec = &intpulse.Recorder{}
		output = chirpmaker.WithEmitter(rec)
	} else {
		buzzer = intaudio.NewBuzzer(intaudio.Params{SampleRate: o.sampleRate, Gain: o.gain, DCBlock: true})
		output = chirpmaker.WithPin(buzzer, buzzer)
	}
	m, err := chirpmaker.New(output,
		chirpmaker.WithSeed(seed),
		chirpmaker.WithLogger(logger),
		chirpmaker.WithCatalog(birds),
	)
	if err != nil {
		return err
	}
	logger.Debug("starting", "mode", o.mode, "backend", o.backend, "seed", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Rendering runs ahead of playback by one chunk.
	chunks := make(chan chunk, 1)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(chunks)
		for n := 0; ; n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			more, err := work(m, n)
			if err != nil {
				return err
			}
			c := chunk{index: n}
			if buzzer != nil {
				c.samples = buzzer.Take()
			} else {
				c.pulses, c.elapsedUs = rec.Pulses(), rec.Elapsed
				rec.Reset()
			}
			select {
			case chunks <- c:
			case <-ctx.Done():
				return ctx.Err()
			}
			if !more {
				return nil
			}
		}
	})
	g.Go(func() error {
		for c := range chunks {
			if sink == nil {
				logger.Info("measured", "chunk", c.index, "pulses", c.pulses,
					"duration", time.Duration(c.elapsedUs)*time.Microsecond)
				continue
			}
			if err := sink.Play(ctx, c.samples); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

type chunk struct {
	index     int
	samples   []float32
	pulses    int
	elapsedUs uint64
}

// workFunc plays the n-th unit of work and reports whether another follows.
type workFunc func(m *chirpmaker.Maker, n int) (bool, error)

func workFor(o options, birds intcat.Catalog) (workFunc, error) {
	once := func(play func(m *chirpmaker.Maker) error) workFunc {
		return func(m *chirpmaker.Maker, _ int) (bool, error) {
			return false, play(m)
		}
	}
	switch o.mode {
	case "concert":
		return func(m *chirpmaker.Maker, n int) (bool, error) {
			m.Tick()
			return o.concerts == 0 || n+1 < o.concerts, nil
		}, nil
	case "bird":
		i, err := birdIndex(birds, o.bird)
		if err != nil {
			return nil, err
		}
		return once(func(m *chirpmaker.Maker) error { return m.BirdVoice(i, 20) }), nil
	case "signet":
		return once(func(m *chirpmaker.Maker) error { m.Signet(); return nil }), nil
	case "phone":
		return once(func(m *chirpmaker.Maker) error { m.PhoneCall(o.rings); return nil }), nil
	case "sweep":
		shape, err := intfreq.ParseShape(o.shape)
		if err != nil {
			return nil, err
		}
		if err := o.sweep.Validate(); err != nil {
			return nil, err
		}
		gen := intfreq.Sinc(shape, o.nPi)
		return once(func(m *chirpmaker.Maker) error { m.Chirp(o.sweep, gen); return nil }), nil
	case "phaser":
		if err := o.phaser.Validate(); err != nil {
			return nil, err
		}
		return once(func(m *chirpmaker.Maker) error { m.Phaser(o.phaser); return nil }), nil
	}
	return nil, fmt.Errorf("invalid -mode %q", o.mode)
}

func birdIndex(birds intcat.Catalog, key string) (int, error) {
	if i, err := strconv.Atoi(key); err == nil {
		if _, err := birds.At(i); err != nil {
			return 0, err
		}
		return i, nil
	}
	return birds.Index(key)
}

func newSink(o options) (intaudio.Sink, error) {
	switch strings.ToLower(o.backend) {
	case "ebiten":
		return intaudio.NewEbitenSink(o.sampleRate)
	case "oto":
		return intaudio.NewOtoSink(o.sampleRate)
	case "wav":
		return intaudio.NewWAVSink(o.out, o.sampleRate), nil
	case "dry":
		return nil, nil
	}
	return nil, fmt.Errorf("invalid -backend %q (expected ebiten|oto|wav|dry)", o.backend)
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func shapeList() string {
	names := make([]string, 0, len(intfreq.Shapes()))
	for _, s := range intfreq.Shapes() {
		names = append(names, s.String())
	}
	return strings.Join(names, "|")
}
