package calculator

import "errors"

// Lift returns the relative difference between a variant rate and a baseline rate.
func Lift(variant, baseline float64) (float64, error) {
	if baseline == 0 {
		return 0, errors.New("baseline rate must be non-zero")
	}
	return (variant - baseline) / baseline, nil
}
