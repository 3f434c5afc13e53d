package recorder

import "ABTestLab/internal/model"

// NoopRecorder discards all data. Used when no database path is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a NoopRecorder.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(model.Experiment, []model.Observation, *model.Summary) error {
	return nil
}

func (n *NoopRecorder) Close() error { return nil }
