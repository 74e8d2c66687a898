package echo

import "errors"

// ErrMultiplePromoted is returned when more than one resource in the family
// carries the promoted stage
var ErrMultiplePromoted = errors.New("more than one resource is promoted")
