package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// estimateTargetPrice derives a fair-value band from book value per share
// and the total-score tier. Both bounds are 0 when price data, shares
// outstanding, or equity is unavailable: an absent estimate, never a
// misleading number.
func (e *Engine) estimateTargetPrice(m *metrics.MetricSet, md *metrics.MarketData, totalPct float64) (float64, float64) {
	if !md.HasMarket() {
		return 0, 0
	}
	if md.SharesOutstanding == nil || *md.SharesOutstanding <= 0 || m.ShareholdersEquity == nil {
		return 0, 0
	}

	bps := mathx.SafeDivide(*m.ShareholdersEquity, *md.SharesOutstanding, 0)
	if bps <= 0 {
		return 0, 0
	}

	tp := e.criteria.TargetPrice
	multiplier := tp.Tiers[len(tp.Tiers)-1].Multiplier
	for _, tier := range tp.Tiers {
		if totalPct >= tier.MinTotalPct {
			multiplier = tier.Multiplier
			break
		}
	}

	mid := bps * multiplier
	return mid * tp.LowFactor, mid * tp.HighFactor
}
