package report

import (
	"fmt"
	"strings"

	"ABTestLab/internal/model"
)

// Format renders the full text report: parameter header, per-day table, and
// the final rate with its interval and significance verdict.
func Format(exp model.Experiment, obs []model.Observation, sum *model.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("A/B Test Simulation: %d days, %d visitors/day\n", exp.Days, exp.VisitorsPerDay))
	b.WriteString(fmt.Sprintf("Baseline rate: %.1f%%, Variant rate: %.1f%%\n", exp.BaselineRate*100, exp.VariantRate*100))
	b.WriteString(fmt.Sprintf("Expected lift: %.1f%%\n\n", sum.ExpectedLift*100))

	b.WriteString(fmt.Sprintf("%10s  %11s  %8s  %8s  %8s  %8s\n",
		"date", "conversions", "visitors", "cum_rate", "ci_lower", "ci_upper"))
	for _, o := range obs {
		b.WriteString(fmt.Sprintf("%10s  %11d  %8d  %8.4f  %8.4f  %8.4f\n",
			o.Date.Format("2006-01-02"), o.Conversions, o.Visitors,
			o.CumRate, o.CILower, o.CIUpper))
	}

	b.WriteString(fmt.Sprintf("\nFinal conversion rate: %.4f\n", sum.FinalRate))
	b.WriteString(fmt.Sprintf("Final %.0f%% CI: [%.4f, %.4f]\n", exp.Confidence*100, sum.CILower, sum.CIUpper))
	b.WriteString(fmt.Sprintf("One-sided z-test vs baseline: z=%.2f, p=%.4f\n", sum.ZScore, sum.PValue))
	b.WriteString(fmt.Sprintf("Baseline (%.2f) %s CI -> %s\n",
		exp.BaselineRate, insideOutside(sum), Verdict(sum)))

	return b.String()
}

// Verdict maps the significance flag to the report wording.
func Verdict(sum *model.Summary) string {
	if sum.Significant {
		return "Statistically significant"
	}
	return "Not yet significant"
}

func insideOutside(sum *model.Summary) string {
	if sum.Significant {
		return "outside"
	}
	return "inside"
}
