package analyzer

import (
	"fmt"
	"log"

	"ABTestLab/internal/calculator"
	"ABTestLab/internal/model"
	"ABTestLab/internal/simulator"
)

// Run executes the full pipeline: generate daily counts, accumulate running
// totals, attach the confidence interval per day, and summarize the final
// verdict against the baseline.
func Run(exp model.Experiment, s simulator.Sampler) ([]model.Observation, *model.Summary, error) {
	obs, err := simulator.Generate(exp, s)
	if err != nil {
		return nil, nil, fmt.Errorf("generate observations: %w", err)
	}
	if err := calculator.Accumulate(obs); err != nil {
		return nil, nil, fmt.Errorf("accumulate: %w", err)
	}

	for i := range obs {
		stderr, lower, upper, err := calculator.WaldInterval(obs[i].CumRate, obs[i].CumVisitors, exp.Confidence)
		if err != nil {
			return nil, nil, fmt.Errorf("interval for day %d: %w", i+1, err)
		}
		obs[i].StdErr = stderr
		obs[i].CILower = lower
		obs[i].CIUpper = upper
	}

	last := obs[len(obs)-1]
	sum := &model.Summary{
		FinalRate: last.CumRate,
		CILower:   last.CILower,
		CIUpper:   last.CIUpper,
		// One-sided: the lower bound must strictly clear the baseline.
		Significant: last.CILower > exp.BaselineRate,
	}

	if lift, err := calculator.Lift(exp.VariantRate, exp.BaselineRate); err != nil {
		log.Printf("[WARN] expected lift unavailable: %v", err)
	} else {
		sum.ExpectedLift = lift
	}
	if lift, err := calculator.Lift(last.CumRate, exp.BaselineRate); err != nil {
		log.Printf("[WARN] observed lift unavailable: %v", err)
	} else {
		sum.ObservedLift = lift
	}
	if z, p, err := calculator.OneSidedZTest(last.CumRate, exp.BaselineRate, last.CumVisitors); err != nil {
		log.Printf("[WARN] z-test unavailable: %v", err)
	} else {
		sum.ZScore = z
		sum.PValue = p
	}

	return obs, sum, nil
}
