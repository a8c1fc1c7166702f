// Package freqgen maps sweep step indices to instantaneous frequencies.
//
// A sweep from fStart to fStop in nSteps steps visits stepNbr = 0..nSteps
// (nSteps+1 values). Each Shape defines how the frequency travels between the
// two bounds. All functions are pure; coefficients that only depend on the
// sweep bounds are computed once by Sweep and reused for every step.
package freqgen

import (
	"fmt"
	"math"
	"strings"
)

const twoPi = math.Pi * 2

// Shape selects one of the frequency curves.
type Shape int

const (
	Linear        Shape = iota // equal Hz increments
	Chromatic                  // equal ratio increments (exponential)
	SinePi                     // fStart + (fStop-fStart)*sin over [0, π]
	Sine2Pi                    // one full sine cycle around the mean
	CosinePi                   // half cosine cycle from fStart to fStop
	Cosine2Pi                  // full cosine cycle: fStart, fStop, fStart
	AtanPi                     // saturating arc-tangent over [0, π]
	Atan2Pi                    // saturating arc-tangent over [0, 2π]
	SincSymmetric              // sinc window over [-nπ, +nπ]
	SincLeft                   // sinc window over [-nπ, 0]
	SincRight                  // sinc window over [0, +nπ], bounds swapped
	numShapes
)

var shapeNames = [numShapes]string{
	Linear:        "linear",
	Chromatic:     "chromatic",
	SinePi:        "sine-pi",
	Sine2Pi:       "sine-2pi",
	CosinePi:      "cosine-pi",
	Cosine2Pi:     "cosine-2pi",
	AtanPi:        "atan-pi",
	Atan2Pi:       "atan-2pi",
	SincSymmetric: "sinc",
	SincLeft:      "sinc-left",
	SincRight:     "sinc-right",
}

func (s Shape) String() string {
	if s < 0 || s >= numShapes {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// IsSinc reports whether the shape uses the nPi window parameter.
func (s Shape) IsSinc() bool {
	return s == SincSymmetric || s == SincLeft || s == SincRight
}

// Shapes returns every known shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, 0, numShapes)
	for s := Shape(0); s < numShapes; s++ {
		out = append(out, s)
	}
	return out
}

// ParseShape resolves a shape from its name. Matching ignores case and
// surrounding whitespace; underscores are accepted in place of dashes.
func ParseShape(name string) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range shapeNames {
		if n == key {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s Shape) MarshalText() ([]byte, error) {
	if s < 0 || s >= numShapes {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// StepFunc returns the frequency of one step of a bound sweep.
type StepFunc func(stepNbr int) float64

// Generator is a shape plus the window width used by the sinc family.
// NPi is ignored by the other shapes.
type Generator struct {
	Shape Shape
	NPi   int
}

// Of returns a generator for a non-sinc shape.
func Of(shape Shape) Generator {
	return Generator{Shape: shape}
}

// Sinc returns a sinc-family generator whose window spans nPi multiples of π.
func Sinc(shape Shape, nPi int) Generator {
	return Generator{Shape: shape, NPi: nPi}
}

func (g Generator) String() string {
	if g.Shape.IsSinc() {
		return fmt.Sprintf("%s(%dπ)", g.Shape, g.NPi)
	}
	return g.Shape.String()
}

// Sweep binds the generator to the sweep bounds and returns the per-step
// function. With nSteps <= 0 the sweep degenerates to a single step at fStart.
//
// Chromatic requires fStart > 0 and fStop > 0.
func (g Generator) Sweep(fStart, fStop float64, nSteps int) StepFunc {
	if nSteps <= 0 {
		return func(int) float64 { return fStart }
	}
	bind := binders[Linear]
	if g.Shape >= 0 && g.Shape < numShapes {
		bind = binders[g.Shape]
	}
	return bind(fStart, fStop, nSteps, g.NPi)
}

// Generate returns the frequency at stepNbr of a sweep. Sweep should be
// preferred when several steps of the same sweep are needed.
func (g Generator) Generate(stepNbr int, fStart, fStop float64, nSteps int) float64 {
	return g.Sweep(fStart, fStop, nSteps)(stepNbr)
}

type binder func(fStart, fStop float64, nSteps, nPi int) StepFunc

var binders = [numShapes]binder{
	Linear:        linear,
	Chromatic:     chromatic,
	SinePi:        sinePi,
	Sine2Pi:       sine2Pi,
	CosinePi:      cosinePi,
	Cosine2Pi:     cosine2Pi,
	AtanPi:        atanPi,
	Atan2Pi:       atan2Pi,
	SincSymmetric: sincSymmetric,
	SincLeft:      sincLeft,
	SincRight:     sincRight,
}

func linear(fStart, fStop float64, nSteps, _ int) StepFunc {
	df := (fStop - fStart) / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + float64(stepNbr)*df
	}
}

// chromatic solves fStop = fStart * e^(k*nSteps) for k.
func chromatic(fStart, fStop float64, nSteps, _ int) StepFunc {
	k := math.Log(fStop/fStart) / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart * math.Exp(k*float64(stepNbr))
	}
}

// sinePi peaks at mid-sweep and returns to fStart.
func sinePi(fStart, fStop float64, nSteps, _ int) StepFunc {
	fa := fStop - fStart
	k := math.Pi / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + fa*math.Sin(k*float64(stepNbr))
	}
}

func sine2Pi(fStart, fStop float64, nSteps, _ int) StepFunc {
	fm, fa := meanSwing(fStart, fStop)
	k := twoPi / float64(nSteps)
	return func(stepNbr int) float64 {
		return fm + fa*math.Sin(k*float64(stepNbr))
	}
}

func cosinePi(fStart, fStop float64, nSteps, _ int) StepFunc {
	fm, fa := meanSwing(fStart, fStop)
	k := math.Pi / float64(nSteps)
	return func(stepNbr int) float64 {
		return fm - fa*math.Cos(k*float64(stepNbr))
	}
}

func cosine2Pi(fStart, fStop float64, nSteps, _ int) StepFunc {
	fm, fa := meanSwing(fStart, fStop)
	k := twoPi / float64(nSteps)
	return func(stepNbr int) float64 {
		return fm - fa*math.Cos(k*float64(stepNbr))
	}
}

func atanPi(fStart, fStop float64, nSteps, _ int) StepFunc {
	return atanOver(math.Pi, fStart, fStop, nSteps)
}

func atan2Pi(fStart, fStop float64, nSteps, _ int) StepFunc {
	return atanOver(twoPi, fStart, fStop, nSteps)
}

// atanOver scales atan over [0, span] so the last step lands on fStop.
func atanOver(span, fStart, fStop float64, nSteps int) StepFunc {
	k := (fStop - fStart) / math.Atan(span)
	step := span / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + k*math.Atan(step*float64(stepNbr))
	}
}

func sincSymmetric(fStart, fStop float64, nSteps, nPi int) StepFunc {
	halfRange := float64(nPi) * math.Pi
	fa := fStop - fStart
	k := 2 * halfRange / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + fa*sinc(k*float64(stepNbr)-halfRange)
	}
}

func sincLeft(fStart, fStop float64, nSteps, nPi int) StepFunc {
	span := float64(nPi) * math.Pi
	fa := fStop - fStart
	k := span / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + fa*sinc(k*float64(stepNbr)-span)
	}
}

// sincRight swaps the bounds before computing the swing, so the sweep starts
// at fStart (sinc(0) = 1) and rings down towards fStop.
func sincRight(fStart, fStop float64, nSteps, nPi int) StepFunc {
	fStart, fStop = fStop, fStart
	span := float64(nPi) * math.Pi
	fa := fStop - fStart
	k := span / float64(nSteps)
	return func(stepNbr int) float64 {
		return fStart + fa*sinc(k*float64(stepNbr))
	}
}

func meanSwing(fStart, fStop float64) (mean, swing float64) {
	return (fStart + fStop) / 2, (fStop - fStart) / 2
}

// sinc is sin(x)/x with the removable singularity at 0 filled in.
func sinc(x float64) float64 {
	if math.Abs(x) < 0.001 {
		return 1
	}
	return math.Sin(x) / x
}
