package optbst

import "errors"

var (
	// ErrMalformedInput signals that the key, value and probability inputs do
	// not agree in length.
	ErrMalformedInput = errors.New("optbst: malformed input")
	// ErrInvalidProbability signals that the lookup probabilities do not total 1.
	ErrInvalidProbability = errors.New("optbst: invalid probability distribution")
)
