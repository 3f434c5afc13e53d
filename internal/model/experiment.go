package model

import "time"

// Experiment holds the generation parameters for a simulated A/B test run.
type Experiment struct {
	Days           int
	VisitorsPerDay int
	BaselineRate   float64
	VariantRate    float64
	Seed           uint64
	StartDate      time.Time
	Confidence     float64
}
