package recorder

import "ABTestLab/internal/model"

// Recorder persists completed runs for later analysis.
type Recorder interface {
	RecordRun(exp model.Experiment, obs []model.Observation, sum *model.Summary) error
	Close() error
}
