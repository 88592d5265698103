package scorecard

import (
	"fmt"

	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/pkg/mathx"
)

// scoreIndicator maps a raw indicator value through its band policy.
// A nil value means the inputs were unknown: the indicator contributes its
// neutral points (not zero, not the maximum) so one missing field does not
// collapse the category.
func scoreIndicator(ic scorecard.IndicatorCriteria, value *float64) (scorecard.ScoreDetail, bool) {
	if value == nil {
		return scorecard.ScoreDetail{
			Name:        ic.Name,
			Score:       ic.NeutralPoints,
			MaxScore:    ic.MaxPoints,
			Description: "데이터 없음 - 중립 점수 적용",
		}, false
	}
	points, label := ic.Evaluate(*value)
	return scorecard.ScoreDetail{
		Name:        ic.Name,
		Value:       value,
		Score:       points,
		MaxScore:    ic.MaxPoints,
		Description: fmt.Sprintf("%s - %s", formatIndicatorValue(ic.Key, *value), label),
	}, true
}

// buildCategory assembles a category score from (key, value) pairs in the
// category's configured indicator order, clamping to [0, max].
func buildCategory(cc scorecard.CategoryCriteria, values map[string]*float64) scorecard.CategoryScore {
	cat := scorecard.CategoryScore{
		Category: cc.Name,
		MaxScore: cc.MaxPoints,
		Details:  make([]scorecard.ScoreDetail, 0, len(cc.Indicators)),
	}
	for _, ic := range cc.Indicators {
		d, computed := scoreIndicator(ic, values[ic.Key])
		cat.Details = append(cat.Details, d)
		cat.ActualScore += d.Score
		if computed {
			cat.Computed++
		}
	}
	if cat.ActualScore > cat.MaxScore {
		cat.ActualScore = cat.MaxScore
	}
	if cat.ActualScore < 0 {
		cat.ActualScore = 0
	}
	return cat
}

func formatIndicatorValue(key string, v float64) string {
	switch key {
	case scorecard.IndPER, scorecard.IndPBR, scorecard.IndPSR,
		scorecard.IndCurrentRatio, scorecard.IndAssetTurnover, scorecard.IndCashCoverage:
		return fmt.Sprintf("%.2f배", v)
	case scorecard.IndEarningsConsistency:
		return fmt.Sprintf("%.0f%%", v*100)
	default:
		return fmt.Sprintf("%.2f%%", v*100)
	}
}

// ratio divides two optional figures. Unknown inputs yield nil (neutral);
// known-but-degenerate inputs yield the safe default 0, matching how the
// rubric treats a zero-equity or zero-revenue company.
func ratio(num, den *float64) *float64 {
	if num == nil || den == nil {
		return nil
	}
	v := mathx.SafeDivide(*num, *den, 0)
	return &v
}
