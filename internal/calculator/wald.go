package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CriticalValue returns the two-sided normal critical value for the given
// confidence level (1.96 at 95%).
func CriticalValue(confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, errors.New("confidence must be in (0, 1)")
	}
	return distuv.UnitNormal.Quantile(0.5 + confidence/2), nil
}

// WaldInterval computes the normal-approximation confidence interval around a
// binomial proportion. Bounds are intentionally not clamped to [0, 1]. A rate
// of exactly 0 or 1 yields a zero standard error and a point interval.
func WaldInterval(rate float64, n int, confidence float64) (stderr, lower, upper float64, err error) {
	if n <= 0 {
		return 0, 0, 0, errors.New("sample size must be positive")
	}
	if rate < 0 || rate > 1 {
		return 0, 0, 0, errors.New("rate must be in [0, 1]")
	}
	z, err := CriticalValue(confidence)
	if err != nil {
		return 0, 0, 0, err
	}
	stderr = math.Sqrt(rate * (1 - rate) / float64(n))
	lower = rate - z*stderr
	upper = rate + z*stderr
	return stderr, lower, upper, nil
}
