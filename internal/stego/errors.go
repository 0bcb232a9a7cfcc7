package stego

import "errors"

// ErrCorruptFrame is returned when a located frame cannot be decoded:
// either a rune outside the two-symbol bit alphabet appears in the run,
// or the run's bit length is not a multiple of 8.
var ErrCorruptFrame = errors.New("corrupt watermark frame")
