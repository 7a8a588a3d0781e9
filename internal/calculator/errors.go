package calculator

import "errors"

// Error kinds returned by the engine. Callers match them with errors.Is.
var (
	// ErrDataAlignment reports mismatched, unordered or incomplete date indices.
	ErrDataAlignment = errors.New("data alignment error")
	// ErrInsufficientData reports too few observations for the requested statistic.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidPrice reports a price whose logarithm is undefined.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidWeightGrid reports a weight grid with fewer than 2 points.
	ErrInvalidWeightGrid = errors.New("invalid weight grid")
	// ErrInvalidFrontierInput reports a negative or non-finite variance.
	ErrInvalidFrontierInput = errors.New("invalid frontier input")
)
