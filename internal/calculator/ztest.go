package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// OneSidedZTest tests H0: p = baseline against p > baseline using the normal
// approximation, returning the z statistic and the upper-tail p-value. The
// standard error is computed under the null, from the baseline rate.
func OneSidedZTest(rate, baseline float64, n int) (z, p float64, err error) {
	if n <= 0 {
		return 0, 0, errors.New("sample size must be positive")
	}
	if baseline <= 0 || baseline >= 1 {
		return 0, 0, errors.New("baseline rate must be in (0, 1)")
	}
	se := math.Sqrt(baseline * (1 - baseline) / float64(n))
	z = (rate - baseline) / se
	p = distuv.UnitNormal.Survival(z)
	return z, p, nil
}
