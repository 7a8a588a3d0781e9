package recorder

import "RiskFrontier/internal/model"

// Recorder persists analysis runs for later comparison.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	Close() error
}
