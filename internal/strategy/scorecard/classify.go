package scorecard

import (
	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// classifyGrade maps the total-score percentage onto the grade ladder.
func (e *Engine) classifyGrade(totalPct float64) string {
	for _, band := range e.criteria.GradeLadder {
		if totalPct >= band.MinPct {
			return band.Grade
		}
	}
	return e.criteria.GradeLadder[len(e.criteria.GradeLadder)-1].Grade
}

// classifyInvestmentGrade derives the recommendation. The top grades are
// gated on stability and profitability so a balance-sheet weakness cannot
// be averaged away by a high raw total.
func (e *Engine) classifyInvestmentGrade(totalPct, stabilityPct, profitabilityPct float64) scorecard.InvestmentGrade {
	cl := e.criteria.Classifier
	stabilityGood := stabilityPct >= cl.GateCategoryPct
	profitabilityGood := profitabilityPct >= cl.GateCategoryPct

	switch {
	case totalPct >= cl.StrongBuyTotalPct && stabilityGood && profitabilityGood:
		return scorecard.StrongBuy
	case totalPct >= cl.BuyTotalPct && stabilityGood:
		return scorecard.Buy
	case totalPct >= cl.HoldTotalPct:
		return scorecard.Hold
	case totalPct >= cl.WeakHoldTotalPct:
		return scorecard.WeakHold
	default:
		return scorecard.Sell
	}
}

// classifyRisk derives the risk tier from stability alone.
func (e *Engine) classifyRisk(stabilityPct float64) scorecard.RiskLevel {
	cl := e.criteria.Classifier
	switch {
	case stabilityPct >= cl.RiskLowPct:
		return scorecard.RiskLow
	case stabilityPct >= cl.RiskMediumPct:
		return scorecard.RiskMedium
	default:
		return scorecard.RiskHigh
	}
}

// classifyQuality averages the quality and profitability percentages.
func (e *Engine) classifyQuality(qualityPct, profitabilityPct float64) scorecard.QualityRating {
	cl := e.criteria.Classifier
	avg := (qualityPct + profitabilityPct) / 2
	switch {
	case avg >= cl.QualityHighPct:
		return scorecard.QualityHigh
	case avg >= cl.QualityGoodPct:
		return scorecard.QualityGood
	default:
		return scorecard.QualityAverage
	}
}
