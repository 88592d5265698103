package scorecard

import (
	"fmt"

	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// strengthsWeaknesses selects up to 3 strong and 3 weak categories by the
// configured percentage cutoffs, in fixed category order.
func (e *Engine) strengthsWeaknesses(a *scorecard.Analysis) ([]string, []string) {
	cl := e.criteria.Classifier
	var strengths, weaknesses []string

	for _, cat := range a.Categories() {
		pct := cat.Percentage()
		if pct >= cl.StrengthPct && len(strengths) < 3 {
			strengths = append(strengths, fmt.Sprintf("우수한 %s (%.1f%%)", cat.Category, pct))
		} else if pct < cl.WeaknessPct && len(weaknesses) < 3 {
			weaknesses = append(weaknesses, fmt.Sprintf("부진한 %s (%.1f%%)", cat.Category, pct))
		}
	}
	return strengths, weaknesses
}

// buildThesis renders the one-line investment thesis from the overall
// grade, total score, recommendation and the strongest category.
func (e *Engine) buildThesis(a *scorecard.Analysis) string {
	pct := a.ScorePercentage()

	var thesis string
	switch {
	case pct >= 80:
		thesis = fmt.Sprintf("워런 버핏 기준으로 우수한 투자 대상입니다 (%s등급, %.1f/110점). %s 추천.",
			a.OverallGrade, a.TotalScore, a.InvestmentGrade)
	case pct >= 65:
		thesis = fmt.Sprintf("워런 버핏 기준으로 양호한 투자 대상입니다 (%s등급, %.1f/110점). %s 수준.",
			a.OverallGrade, a.TotalScore, a.InvestmentGrade)
	default:
		thesis = fmt.Sprintf("워런 버핏 기준으로 신중한 검토가 필요합니다 (%s등급, %.1f/110점). %s 권고.",
			a.OverallGrade, a.TotalScore, a.InvestmentGrade)
	}

	if best := strongestCategory(a); best != nil {
		thesis += fmt.Sprintf(" 가장 강한 영역은 %s(%.1f%%)입니다.", best.Category, best.Percentage())
	}
	return thesis
}

// strongestCategory returns the category with the highest percentage;
// ties resolve to the earlier category in scoring order.
func strongestCategory(a *scorecard.Analysis) *scorecard.CategoryScore {
	cats := a.Categories()
	best := 0
	for i := 1; i < len(cats); i++ {
		if cats[i].Percentage() > cats[best].Percentage() {
			best = i
		}
	}
	return &cats[best]
}
