package scorecard

import (
	"math"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreQuality 품질 프리미엄 (10점): 수익 일관성, 이익 추세
func (e *Engine) scoreQuality(m *metrics.MetricSet) scorecard.CategoryScore {
	values := map[string]*float64{
		scorecard.IndEarningsConsistency: e.earningsConsistency(m.NetIncomeHistory),
		scorecard.IndEarningsTrend:       earningsTrend(m.NetIncomeHistory),
	}
	return buildCategory(e.criteria.Quality, values)
}

// earningsConsistency is the fraction of historical periods with positive
// net income.
func (e *Engine) earningsConsistency(history []float64) *float64 {
	if len(history) < e.criteria.MinHistoryPeriods {
		return nil
	}
	positive := 0
	for _, income := range history {
		if income > 0 {
			positive++
		}
	}
	v := float64(positive) / float64(len(history))
	return &v
}

// earningsTrend compares the newest against the oldest period, scaled by
// the oldest period's magnitude.
func earningsTrend(history []float64) *float64 {
	n := len(history)
	if n < 2 {
		return nil
	}
	oldest, newest := history[0], history[n-1]
	v := mathx.SafeDivide(newest-oldest, math.Abs(oldest), 0)
	return &v
}
