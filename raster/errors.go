package raster

import "errors"

// ErrInvalidConfig reports a Config whose MaxWidth is zero or negative.
var ErrInvalidConfig = errors.New("raster: max width must be positive")

// ErrTooLarge reports an image whose packed rows or height overflow the
// command header's 16-bit dimension fields.
var ErrTooLarge = errors.New("raster: image exceeds 16-bit header dimensions")

// LoadError wraps a failure to read or decode an image source.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "raster: load image: " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }
