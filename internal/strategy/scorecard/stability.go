package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreStability 안정성 지표 (25점): 부채비율, 유동비율, 자기자본비율, 현금/차입금
func (e *Engine) scoreStability(m *metrics.MetricSet) scorecard.CategoryScore {
	values := map[string]*float64{
		scorecard.IndDebtRatio:    ratio(m.TotalDebt, m.TotalAssets),
		scorecard.IndCurrentRatio: ratio(m.CurrentAssets, m.CurrentLiabilities),
		scorecard.IndEquityRatio:  ratio(m.ShareholdersEquity, m.TotalAssets),
		scorecard.IndCashCoverage: cashCoverage(m),
	}
	return buildCategory(e.criteria.Stability, values)
}

// cashCoverage is cash and equivalents over total debt. A debt-free
// company divides by zero; the safe default of 10 lands it in the best
// band, which is the economically correct reading.
func cashCoverage(m *metrics.MetricSet) *float64 {
	if m.CashAndEquivalents == nil || m.TotalDebt == nil {
		return nil
	}
	v := mathx.SafeDivide(*m.CashAndEquivalents, *m.TotalDebt, 10)
	return &v
}
