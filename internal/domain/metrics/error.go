package metrics

import "errors"

var (
	// Validation errors
	ErrInvalidSymbol       = errors.New("invalid stock symbol format")
	ErrMissingAnalysisDate = errors.New("analysis date is required")
	ErrHistoryTooLong      = errors.New("history exceeds 5 periods")

	// Data errors
	ErrMetricsNotFound = errors.New("financial metrics not found")
)
