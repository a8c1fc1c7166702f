package catalog

import "github.com/cbegin/chirpmaker-go/internal/freqgen"

// Positions of the named calls in Birds.
const (
	Cuckoo    = 11
	Raven     = 12
	Chaffinch = 13
	Blackbird = 14
)

// cuckooThird is the interval between "cuc" and "koo", between a minor
// third (1.18) and a major third (1.25).
const cuckooThird = 1.222

func sweep(shape freqgen.Shape, fStart, fStop, steps, periods, chirps Value, duty int, pause Value) Call {
	return Call{
		Kind:    KindChirp,
		Shape:   shape,
		FStart:  fStart,
		FStop:   fStop,
		Steps:   steps,
		Periods: periods,
		Chirps:  chirps,
		Duty:    Fix(float64(duty)),
		Pause:   pause,
	}
}

func phase(freq, periods Value, dutyStart, dutyEnd int, chirps, pause Value) Call {
	return Call{
		Kind:      KindPhaser,
		Freq:      freq,
		Periods:   periods,
		DutyStart: Fix(float64(dutyStart)),
		DutyEnd:   Fix(float64(dutyEnd)),
		Chirps:    chirps,
		Pause:     pause,
	}
}

// Birds returns the built-in catalog. Every call returns a fresh copy.
func Birds() Catalog {
	f, r := Fix, Rand
	const (
		linear    = freqgen.Linear
		chromatic = freqgen.Chromatic
		sinePi    = freqgen.SinePi
		sine2Pi   = freqgen.Sine2Pi
		cosine2Pi = freqgen.Cosine2Pi
		atanPi    = freqgen.AtanPi
		atan2Pi   = freqgen.Atan2Pi
		cuc       = 667.0 // E5
		koo       = cuc / cuckooThird
		half      = 50 // % duty
	)
	return Catalog{
		{Name: "bird0", Calls: []Call{
			sweep(chromatic, r(1200, 1900), r(4300, 4500), r(10, 27), r(1, 5), f(5), half, r(59, 199)),
			sweep(atanPi, r(2000, 2050), r(3200, 3400), r(5, 30), r(2, 15), r(4, 10), half, f(20)),
			sweep(sine2Pi, f(1500), f(4500), r(50, 100), r(1, 13), r(1, 5), half, f(100)),
		}},
		{Name: "bird1", Calls: []Call{
			sweep(chromatic, r(4200, 4400), r(2800, 2500), f(100), r(1, 3), r(3, 9), half, r(25, 75)),
		}},
		{Name: "bird2", Calls: []Call{
			sweep(sine2Pi, r(3500, 3900), r(5600, 5900), r(3, 7), r(5, 10), f(1), half, r(50, 100)),
			sweep(cosine2Pi, r(5600, 5900), r(3500, 3900), r(6, 15), r(3, 7), f(1), half, r(50, 100)),
		}},
		{Name: "bird3", Calls: []Call{
			sweep(linear, r(1280, 1300), r(1310, 1620), f(10), r(4, 8), r(2, 9), half, r(100, 200)),
		}},
		{Name: "bird4", Calls: []Call{
			sweep(atan2Pi, f(4000), f(4800), f(10), f(4), r(10, 15), half, f(20)),
			sweep(atanPi, f(3500), f(4300), f(15), f(10), f(1), half, f(20)),
			sweep(sinePi, f(3500), f(3000), f(25), f(10), f(1), half, r(75, 150)),
		}},
		{Name: "bird5", Calls: []Call{
			sweep(linear, r(4404, 4484), r(4380, 4420), f(20), r(1, 4), r(1, 7), half, f(250)),
		}},
		{Name: "bird6", Calls: []Call{
			sweep(chromatic, r(1000, 1050), r(900, 1200), f(20), r(1, 5), r(10, 15), half, r(150, 250)),
		}},
		{Name: "bird7", Calls: []Call{
			sweep(chromatic, f(2600), f(4400), f(10), f(1), r(5, 9), half, r(20, 150)),
		}},
		{Name: "bird8", Calls: []Call{
			sweep(sine2Pi, f(1320), f(3880), f(5), f(10), f(5), half, f(100)),
		}},
		{Name: "bird9", Calls: []Call{
			phase(r(3500, 3540), r(6, 12), 5, 50, r(3, 15), f(0)),
			phase(r(1660, 1800), r(3, 10), 5, 30, r(6, 13), r(100, 300)),
		}},
		{Name: "bird10", Calls: []Call{
			sweep(atanPi, f(1440), f(1880), f(20), f(10), r(1, 9), 5, f(10)),
			sweep(atanPi, f(1880), f(1440), f(20), f(10), r(1, 9), half, f(30)),
		}},
		{Name: "cuckoo", Repeat: 4, RestMs: 300, Calls: []Call{
			sweep(linear, f(cuc), f(cuc), f(1), f(46), f(1), half, f(200)),
			sweep(linear, f(koo), f(koo), f(1), f(52), f(1), half, f(830)),
		}},
		{Name: "raven", Calls: []Call{
			sweep(atanPi, f(75), f(65), f(8), f(4), r(2, 6), 20, f(550)),
		}},
		{Name: "chaffinch", Calls: []Call{
			sweep(chromatic, f(4000), f(5000), f(10), r(15, 30), r(1, 9), half, r(10, 100)),
			sweep(chromatic, f(5000), f(4000), f(10), r(15, 50), r(1, 9), 15, r(10, 30)),
		}},
		{Name: "blackbird", Calls: []Call{
			sweep(atanPi, f(900), f(2000), r(10, 50), f(13), r(1, 4), half, f(80)),
			sweep(sine2Pi, f(2400), f(1000), r(15, 65), f(8), r(1, 3), half, f(80)),
			sweep(cosine2Pi, r(3000, 2000), r(1500, 1200), r(75, 120), r(2, 9), r(1, 4), half, f(80)),
		}},
	}
}

// Signet is a rising then falling cosine sweep used as a start-up jingle.
func Signet() Preset {
	return Preset{Name: "signet", Calls: []Call{
		sweep(freqgen.Cosine2Pi, Fix(440), Fix(1320), Fix(6), Fix(300), Fix(1), 50, Fix(1000)),
		sweep(freqgen.Cosine2Pi, Fix(1320), Fix(440), Fix(6), Fix(300), Fix(1), 50, Fix(3000)),
	}}
}

// PhoneCall imitates a ringing telephone n times.
func PhoneCall(n int) Preset {
	return Preset{Name: "phone", Calls: []Call{
		sweep(freqgen.SinePi, Fix(667), Fix(557), Fix(2), Fix(20), Fix(float64(n)), 50, Fix(20)),
	}}
}
