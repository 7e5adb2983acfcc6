package optbst

import (
	"fmt"
	"math"
	"sort"
)

// probTolerance is the maximum absolute deviation of the probability total
// from 1 that validation accepts.
const probTolerance = 0.0001

// checkLengths verifies that keys, values and keyProbs agree in length and
// that missProbs carries exactly one entry more (one gap before each key plus
// the trailing gap). Violations report all four observed lengths.
func checkLengths(keys, values []string, keyProbs, missProbs []float64) error {
	n := len(keys)
	if len(values) != n || len(keyProbs) != n || len(missProbs) != n+1 {
		return fmt.Errorf("%w: %d keys, %d values, %d key probs, %d miss probs",
			ErrMalformedInput, n, len(values), len(keyProbs), len(missProbs))
	}
	return nil
}

// checkProbs verifies that key and miss probabilities together total 1 within
// probTolerance. The probabilities are summed smallest first to limit
// floating-point round-off before the comparison.
func checkProbs(keyProbs, missProbs []float64) error {
	all := make([]float64, 0, len(keyProbs)+len(missProbs))
	all = append(all, keyProbs...)
	all = append(all, missProbs...)
	sort.Float64s(all)
	var total float64
	for _, p := range all {
		total += p
	}
	if math.Abs(1.0-total) > probTolerance {
		return fmt.Errorf("%w: probabilities total to %g", ErrInvalidProbability, total)
	}
	return nil
}
