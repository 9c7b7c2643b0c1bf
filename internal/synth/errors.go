package synth

import "errors"

var (
	ErrNegativeCount = errors.New("record count must not be negative")
	ErrEmptyPath     = errors.New("output path is empty")
)
