package scorecard

import (
	"context"
	"time"

	"github.com/wonny/valuescan/internal/domain/metrics"
)

// AnalysisRepository persists analysis results, unique on (symbol, date).
type AnalysisRepository interface {
	// Save upserts an analysis result.
	Save(ctx context.Context, analysis *Analysis) error

	// GetLatest returns the most recent analysis for a symbol.
	GetLatest(ctx context.Context, symbol string) (*Analysis, error)

	// GetByDate returns the analysis for a symbol on a specific date.
	GetByDate(ctx context.Context, symbol string, date time.Time) (*Analysis, error)

	// GetTopByScore returns the highest-scoring analyses for a date.
	GetTopByScore(ctx context.Context, date time.Time, limit int) ([]*Analysis, error)
}

// MetricsReader loads normalized metric sets prepared by the external
// data-acquisition layer.
type MetricsReader interface {
	// GetMetricSet returns the metric set for a symbol as of a date.
	GetMetricSet(ctx context.Context, symbol string, date time.Time) (*metrics.MetricSet, error)

	// GetMarketData returns the market snapshot for a symbol, or nil when
	// no price data is available.
	GetMarketData(ctx context.Context, symbol string, date time.Time) (*metrics.MarketData, error)

	// ListSymbols returns all symbols with usable financial data.
	ListSymbols(ctx context.Context) ([]string, error)
}
