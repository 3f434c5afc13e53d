package model

// Summary holds the final verdict of a run.
type Summary struct {
	FinalRate    float64
	CILower      float64
	CIUpper      float64
	ExpectedLift float64
	ObservedLift float64
	ZScore       float64
	PValue       float64
	Significant  bool
}
