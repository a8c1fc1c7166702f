package concert

import "errors"

// ErrInvalidParams indicates a concert range that can draw a negative count or pause.
var ErrInvalidParams = errors.New("concert: invalid params")
