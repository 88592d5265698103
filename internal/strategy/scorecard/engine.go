// Package scorecard implements the 110-point value-investing scoring
// engine: six category scorers, the grade/recommendation classifiers, the
// target-price band and the narrative builder. The engine is a pure
// computation over an immutable metric set; it holds no mutable state and
// never fails on missing or degenerate data.
package scorecard

import (
	"github.com/rs/zerolog/log"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// Engine scores metric sets against a criteria policy.
type Engine struct {
	criteria *scorecard.Criteria
}

// NewEngine creates an engine. A nil criteria selects the default policy.
func NewEngine(criteria *scorecard.Criteria) (*Engine, error) {
	if criteria == nil {
		criteria = scorecard.DefaultCriteria()
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return &Engine{criteria: criteria}, nil
}

// Criteria returns the active policy.
func (e *Engine) Criteria() *scorecard.Criteria {
	return e.criteria
}

// Analyze scores one metric set and returns a complete analysis result.
// Market data may be nil; the valuation category then falls back to its
// neutral defaults and no target price is estimated. Calling Analyze twice
// with the same inputs yields identical results.
func (e *Engine) Analyze(m *metrics.MetricSet, md *metrics.MarketData) *scorecard.Analysis {
	profitability := e.scoreProfitability(m)
	growth := e.scoreGrowth(m)
	stability := e.scoreStability(m)
	efficiency := e.scoreEfficiency(m)
	valuation := e.scoreValuation(m, md)
	quality := e.scoreQuality(m)

	total := profitability.ActualScore + growth.ActualScore + stability.ActualScore +
		efficiency.ActualScore + valuation.ActualScore + quality.ActualScore

	a := &scorecard.Analysis{
		Symbol:        m.Symbol,
		Name:          m.Name,
		AnalysisDate:  m.AnalysisDate,
		TotalScore:    total,
		MaxTotalScore: scorecard.MaxTotalScore,
		Profitability: profitability,
		Growth:        growth,
		Stability:     stability,
		Efficiency:    efficiency,
		Valuation:     valuation,
		Quality:       quality,
	}

	pct := a.ScorePercentage()
	a.OverallGrade = e.classifyGrade(pct)
	a.InvestmentGrade = e.classifyInvestmentGrade(pct, stability.Percentage(), profitability.Percentage())
	a.RiskLevel = e.classifyRisk(stability.Percentage())
	a.QualityRating = e.classifyQuality(quality.Percentage(), profitability.Percentage())

	a.KeyStrengths, a.KeyWeaknesses = e.strengthsWeaknesses(a)
	a.InvestmentThesis = e.buildThesis(a)
	a.TargetPriceLow, a.TargetPriceHigh = e.estimateTargetPrice(m, md, pct)

	computed := 0
	for _, cat := range a.Categories() {
		computed += cat.Computed
	}
	a.ComputedIndicators = computed
	a.TotalIndicators = e.criteria.TotalIndicators()
	a.DataSufficient = computed*2 >= a.TotalIndicators

	log.Debug().
		Str("symbol", a.Symbol).
		Float64("total_score", a.TotalScore).
		Str("grade", a.OverallGrade).
		Str("investment_grade", string(a.InvestmentGrade)).
		Bool("data_sufficient", a.DataSufficient).
		Msg("Scorecard analysis complete")

	return a
}
