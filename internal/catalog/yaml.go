package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cbegin/chirpmaker-go/internal/random"
)

// File is the on-disk form of a catalog.
//
//	birds:
//	  - name: raven
//	    calls:
//	      - kind: chirp
//	        shape: atan-pi
//	        f_start: 75
//	        f_stop: 65
//	        steps: 8
//	        periods: 4
//	        chirps: [2, 6]
//	        duty: 20
//	        pause_ms: 550
type File struct {
	Birds Catalog `yaml:"birds"`
}

// Load decodes and validates a catalog.
func Load(r io.Reader) (Catalog, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := f.Birds.Validate(); err != nil {
		return nil, err
	}
	return f.Birds, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	c, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes c in the format Load reads.
func Write(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Birds: c}); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks that every call of every preset, sampled at the bounds of
// its ranges, satisfies the engine preconditions.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for _, p := range c {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: preset without name", ErrInvalidCall)
		}
		for i, call := range p.Calls {
			for _, s := range []random.Sampler{random.Fixed{}, upperBound{}} {
				if err := call.validate(s); err != nil {
					return fmt.Errorf("%s call %d: %w: %w", p.Name, i, ErrInvalidCall, err)
				}
			}
		}
	}
	return nil
}

func (c Call) validate(s random.Sampler) error {
	if err := c.Pause.within("pause_ms", 0, math.MaxUint32); err != nil {
		return err
	}
	switch c.Kind {
	case KindChirp:
		if c.Shape.IsSinc() && c.NPi < 1 {
			return fmt.Errorf("%s needs n_pi >= 1", c.Shape)
		}
		if err := countsWithin(map[string]Value{
			"steps": c.Steps, "periods": c.Periods, "chirps": c.Chirps, "duty": c.Duty,
		}); err != nil {
			return err
		}
		return c.Sweep(s).Validate()
	case KindPhaser:
		if err := countsWithin(map[string]Value{
			"periods": c.Periods, "chirps": c.Chirps, "duty_start": c.DutyStart, "duty_end": c.DutyEnd,
		}); err != nil {
			return err
		}
		return c.PhaseSweep(s).Validate()
	case KindRest:
		return nil
	}
	return fmt.Errorf("unknown kind %d", int(c.Kind))
}

// within checks the bounds of v before they are converted to integers.
func (v Value) within(name string, lo, hi float64) error {
	bounds := []float64{v.Lo}
	if v.Ranged {
		bounds = append(bounds, v.Hi)
	}
	for _, x := range bounds {
		if math.IsNaN(x) || x < lo || x > hi {
			return fmt.Errorf("%s %v outside [%g, %g]", name, v, lo, hi)
		}
	}
	return nil
}

func countsWithin(values map[string]Value) error {
	for name, v := range values {
		if err := v.within(name, 0, math.MaxInt32); err != nil {
			return err
		}
	}
	return nil
}

// upperBound samples the largest value a range can produce.
type upperBound struct{}

func (upperBound) InRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return hi - 1
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.Ranged {
		return []float64{v.Lo, v.Hi}, nil
	}
	return v.Lo, nil
}

// UnmarshalYAML accepts a number (fixed) or a [lo, hi] pair (range).
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var x float64
		if err := node.Decode(&x); err != nil {
			return err
		}
		*v = Fix(x)
		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: range needs exactly two bounds, got %d", node.Line, len(pair))
		}
		*v = Rand(pair[0], pair[1])
		return nil
	}
	return fmt.Errorf("line %d: value must be a number or [lo, hi]", node.Line)
}

var kindNames = map[Kind]string{
	KindChirp:  "chirp",
	KindPhaser: "phaser",
	KindRest:   "rest",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidCall, text)
}
