package scorecard

import "errors"

var (
	// Criteria validation errors
	ErrInvalidCriteria   = errors.New("invalid scoring criteria")
	ErrBandsNotMonotonic = errors.New("indicator bands are not monotonic")
	ErrNeutralOutOfRange = errors.New("neutral points outside [0, max]")

	// Data errors
	ErrAnalysisNotFound  = errors.New("analysis not found")
	ErrDuplicateAnalysis = errors.New("analysis already exists for symbol and date")
)
