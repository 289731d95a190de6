package design

import "errors"

// ErrInvalidInertia indicates a non-positive joint inertia. Inertia
// divides both frequency-to-gain conversions, so synthesis cannot
// proceed without it.
var ErrInvalidInertia = errors.New("design: inertia must be positive")
