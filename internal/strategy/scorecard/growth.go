package scorecard

import (
	"math"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreGrowth 성장성 지표 (25점): 매출/순이익 CAGR, 전년비 증가율
//
// CAGR indicators require at least MinHistoryPeriods periods; shorter
// histories fall back to the neutral default rather than scoring zero.
func (e *Engine) scoreGrowth(m *metrics.MetricSet) scorecard.CategoryScore {
	values := map[string]*float64{
		scorecard.IndRevenueCAGR:   e.historyCAGR(m.RevenueHistory),
		scorecard.IndNetIncomeCAGR: e.historyCAGR(m.NetIncomeHistory),
		scorecard.IndRevenueYoY:    yearOverYear(m.RevenueHistory),
		scorecard.IndNetIncomeYoY:  yearOverYear(m.NetIncomeHistory),
	}
	return buildCategory(e.criteria.Growth, values)
}

func (e *Engine) historyCAGR(history []float64) *float64 {
	if len(history) < e.criteria.MinHistoryPeriods {
		return nil
	}
	years := float64(len(history) - 1)
	v := mathx.CAGR(history[0], history[len(history)-1], years)
	return &v
}

// yearOverYear is the latest period's growth against the prior period,
// scaled by the prior period's magnitude so a loss-to-profit swing still
// produces a finite rate.
func yearOverYear(history []float64) *float64 {
	n := len(history)
	if n < 2 {
		return nil
	}
	prev, latest := history[n-2], history[n-1]
	v := mathx.SafeDivide(latest-prev, math.Abs(prev), 0)
	return &v
}
