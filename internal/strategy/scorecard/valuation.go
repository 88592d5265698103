package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreValuation 가치평가 지표 (20점): PER, PBR, PSR
//
// Scored only when market data is present; otherwise the whole category
// falls back to its neutral mid-band defaults.
func (e *Engine) scoreValuation(m *metrics.MetricSet, md *metrics.MarketData) scorecard.CategoryScore {
	values := map[string]*float64{}
	if md.HasMarket() {
		values[scorecard.IndPER] = priceEarnings(m, md)
		marketCap := resolveMarketCap(md)
		values[scorecard.IndPBR] = positiveRatio(marketCap, m.ShareholdersEquity)
		values[scorecard.IndPSR] = positiveRatio(marketCap, m.Revenue)
	}
	return buildCategory(e.criteria.Valuation, values)
}

// priceEarnings returns PER only for positive earnings; a loss-making
// company has no meaningful multiple and scores neutral instead.
func priceEarnings(m *metrics.MetricSet, md *metrics.MarketData) *float64 {
	if m.EPS == nil || *m.EPS <= 0 {
		return nil
	}
	v := mathx.SafeDivide(*md.Price, *m.EPS, 0)
	return &v
}

// resolveMarketCap prefers the reported market cap and falls back to
// price x shares outstanding.
func resolveMarketCap(md *metrics.MarketData) *float64 {
	if md.MarketCap != nil && *md.MarketCap > 0 {
		return md.MarketCap
	}
	if md.SharesOutstanding != nil && *md.SharesOutstanding > 0 {
		v := *md.Price * *md.SharesOutstanding
		return &v
	}
	return nil
}

// positiveRatio divides only when the denominator is known and positive;
// PBR against non-positive equity is meaningless, not zero.
func positiveRatio(num, den *float64) *float64 {
	if num == nil || den == nil || *den <= 0 {
		return nil
	}
	v := mathx.SafeDivide(*num, *den, 0)
	return &v
}
