package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreProfitability 수익성 지표 (30점): ROE, ROA, 영업이익률, 순이익률, 순마진 추세
func (e *Engine) scoreProfitability(m *metrics.MetricSet) scorecard.CategoryScore {
	values := map[string]*float64{
		scorecard.IndROE:             ratio(m.NetIncome, m.ShareholdersEquity),
		scorecard.IndROA:             ratio(m.NetIncome, m.TotalAssets),
		scorecard.IndOperatingMargin: ratio(m.OperatingIncome, m.Revenue),
		scorecard.IndNetMargin:       ratio(m.NetIncome, m.Revenue),
		scorecard.IndNetMarginTrend:  netMarginTrend(m),
	}
	return buildCategory(e.criteria.Profitability, values)
}

// netMarginTrend is the change in net margin between the oldest and newest
// reported periods. Requires aligned revenue and net-income histories.
func netMarginTrend(m *metrics.MetricSet) *float64 {
	n := len(m.RevenueHistory)
	if n < 2 || len(m.NetIncomeHistory) != n {
		return nil
	}
	oldest := mathx.SafeDivide(m.NetIncomeHistory[0], m.RevenueHistory[0], 0)
	newest := mathx.SafeDivide(m.NetIncomeHistory[n-1], m.RevenueHistory[n-1], 0)
	trend := newest - oldest
	return &trend
}
