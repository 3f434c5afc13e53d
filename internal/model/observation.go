package model

import "time"

// Observation is one simulated day, augmented with running totals and the
// confidence interval around the cumulative rate.
type Observation struct {
	Date           time.Time
	Conversions    int
	Visitors       int
	CumConversions int
	CumVisitors    int
	CumRate        float64
	StdErr         float64
	CILower        float64
	CIUpper        float64
}
