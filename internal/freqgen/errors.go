package freqgen

import "errors"

// ErrUnknownShape indicates a shape name that ParseShape does not recognise.
var ErrUnknownShape = errors.New("freqgen: unknown shape")
