package simulator

import (
	"errors"

	"ABTestLab/internal/model"
)

// Generate produces one observation per simulated day, with sequential dates
// starting at the experiment start date. Conversion counts are clamped to
// [0, visitors] so downstream invariants hold regardless of sampler behavior.
func Generate(exp model.Experiment, s Sampler) ([]model.Observation, error) {
	if exp.Days <= 0 {
		return nil, errors.New("days must be positive")
	}
	if exp.VisitorsPerDay <= 0 {
		return nil, errors.New("visitors per day must be positive")
	}
	if exp.VariantRate < 0 || exp.VariantRate > 1 {
		return nil, errors.New("variant rate must be in [0, 1]")
	}

	obs := make([]model.Observation, exp.Days)
	for i := range obs {
		c := s.Sample(exp.VisitorsPerDay, exp.VariantRate)
		if c < 0 {
			c = 0
		}
		if c > exp.VisitorsPerDay {
			c = exp.VisitorsPerDay
		}
		obs[i] = model.Observation{
			Date:        exp.StartDate.AddDate(0, 0, i),
			Conversions: c,
			Visitors:    exp.VisitorsPerDay,
		}
	}
	return obs, nil
}
