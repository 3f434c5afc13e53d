package calculator

import (
	"errors"

	"ABTestLab/internal/model"
)

// Accumulate fills the running totals and cumulative rate in place via a
// left-to-right prefix scan. O(D), no side effects beyond the slice itself.
func Accumulate(obs []model.Observation) error {
	cumConversions, cumVisitors := 0, 0
	for i := range obs {
		o := &obs[i]
		if o.Visitors <= 0 {
			return errors.New("visitors must be positive")
		}
		if o.Conversions < 0 || o.Conversions > o.Visitors {
			return errors.New("conversions must be in [0, visitors]")
		}
		cumConversions += o.Conversions
		cumVisitors += o.Visitors
		o.CumConversions = cumConversions
		o.CumVisitors = cumVisitors
		o.CumRate = float64(cumConversions) / float64(cumVisitors)
	}
	return nil
}
