package app

import "errors"

// ErrNoSurface is returned by a driver that could not open its output.
var ErrNoSurface = errors.New("drawing surface unavailable")
