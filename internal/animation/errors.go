package animation

import "errors"

var (
	// ErrInvalidInterval indicates an interval outside [MinIntervalMs, MaxIntervalMs].
	ErrInvalidInterval = errors.New("animation: interval out of range")

	// ErrAnimating indicates an operation that is not allowed while a run is in progress.
	ErrAnimating = errors.New("animation: algorithm cannot change while animating")
)
