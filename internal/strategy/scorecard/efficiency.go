package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// scoreEfficiency 효율성 지표 (10점): 총자산회전율
func (e *Engine) scoreEfficiency(m *metrics.MetricSet) scorecard.CategoryScore {
	values := map[string]*float64{
		scorecard.IndAssetTurnover: ratio(m.Revenue, m.TotalAssets),
	}
	return buildCategory(e.criteria.Efficiency, values)
}
