package scorecard

import (
	"encoding/json"
	"fmt"
	"os"
)

// Indicator keys. Scorers look indicators up by key so that criteria files
// can reorder or retune bands without touching code.
const (
	IndROE             = "roe"
	IndROA             = "roa"
	IndOperatingMargin = "operating_margin"
	IndNetMargin       = "net_margin"
	IndNetMarginTrend  = "net_margin_trend"

	IndRevenueCAGR   = "revenue_cagr"
	IndNetIncomeCAGR = "net_income_cagr"
	IndRevenueYoY    = "revenue_yoy"
	IndNetIncomeYoY  = "net_income_yoy"

	IndDebtRatio    = "debt_ratio"
	IndCurrentRatio = "current_ratio"
	IndEquityRatio  = "equity_ratio"
	IndCashCoverage = "cash_coverage"

	IndAssetTurnover = "asset_turnover"

	IndPER = "per"
	IndPBR = "pbr"
	IndPSR = "psr"

	IndEarningsConsistency = "earnings_consistency"
	IndEarningsTrend       = "earnings_trend"
)

// Band is one threshold step of an indicator. Bands are ordered best to
// worst; for a higher-is-better indicator a band matches when the value is
// at least Threshold, for lower-is-better when it is at most Threshold.
type Band struct {
	Threshold float64 `json:"threshold"`
	Points    float64 `json:"points"`
	Label     string  `json:"label"`
}

// IndicatorCriteria is the full scoring policy for one indicator.
type IndicatorCriteria struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"` // 표시용 지표명
	MaxPoints     float64 `json:"max_points"`
	NeutralPoints float64 `json:"neutral_points"` // 입력 결측 시 부여 점수
	LowerIsBetter bool    `json:"lower_is_better"`
	Bands         []Band  `json:"bands"` // best → worst
	FloorPoints   float64 `json:"floor_points"`
	FloorLabel    string  `json:"floor_label"`
}

// Evaluate maps a raw indicator value through the band ladder and returns
// the earned points with the matched band's label.
func (ic IndicatorCriteria) Evaluate(value float64) (float64, string) {
	for _, b := range ic.Bands {
		if ic.LowerIsBetter {
			if value <= b.Threshold {
				return b.Points, b.Label
			}
		} else {
			if value >= b.Threshold {
				return b.Points, b.Label
			}
		}
	}
	return ic.FloorPoints, ic.FloorLabel
}

// CategoryCriteria groups the indicator policies of one category.
type CategoryCriteria struct {
	Name       string              `json:"name"` // 카테고리명
	MaxPoints  float64             `json:"max_points"`
	Indicators []IndicatorCriteria `json:"indicators"`
}

// Indicator returns the policy for the given key.
func (cc CategoryCriteria) Indicator(key string) (IndicatorCriteria, bool) {
	for _, ic := range cc.Indicators {
		if ic.Key == key {
			return ic, true
		}
	}
	return IndicatorCriteria{}, false
}

// GradeBand maps a minimum total-score percentage to a letter grade.
type GradeBand struct {
	MinPct float64 `json:"min_pct"`
	Grade  string  `json:"grade"`
}

// MultiplierTier selects a book-value multiplier by total-score percentage.
type MultiplierTier struct {
	MinTotalPct float64 `json:"min_total_pct"`
	Multiplier  float64 `json:"multiplier"`
}

// ClassifierCriteria holds the recommendation/risk/quality thresholds.
// Percentages are 0..100.
type ClassifierCriteria struct {
	StrongBuyTotalPct float64 `json:"strong_buy_total_pct"` // 85
	GateCategoryPct   float64 `json:"gate_category_pct"`    // 70 (안정성·수익성 동반 조건)
	BuyTotalPct       float64 `json:"buy_total_pct"`        // 75
	HoldTotalPct      float64 `json:"hold_total_pct"`       // 65
	WeakHoldTotalPct  float64 `json:"weak_hold_total_pct"`  // 55

	RiskLowPct    float64 `json:"risk_low_pct"`    // 80
	RiskMediumPct float64 `json:"risk_medium_pct"` // 60

	QualityHighPct float64 `json:"quality_high_pct"` // 85
	QualityGoodPct float64 `json:"quality_good_pct"` // 70

	StrengthPct float64 `json:"strength_pct"` // 80
	WeaknessPct float64 `json:"weakness_pct"` // 50
}

// TargetPriceCriteria configures the fair-value band estimator.
type TargetPriceCriteria struct {
	Tiers      []MultiplierTier `json:"tiers"` // best → worst
	LowFactor  float64          `json:"low_factor"`
	HighFactor float64          `json:"high_factor"`
}

// Criteria is the single auditable policy object for the whole scorecard:
// every band boundary, point value, neutral default, grade ladder step and
// target multiplier lives here, never in scorer code.
type Criteria struct {
	Profitability CategoryCriteria `json:"profitability"`
	Growth        CategoryCriteria `json:"growth"`
	Stability     CategoryCriteria `json:"stability"`
	Efficiency    CategoryCriteria `json:"efficiency"`
	Valuation     CategoryCriteria `json:"valuation"`
	Quality       CategoryCriteria `json:"quality"`

	GradeLadder []GradeBand         `json:"grade_ladder"` // best → worst
	Classifier  ClassifierCriteria  `json:"classifier"`
	TargetPrice TargetPriceCriteria `json:"target_price"`

	// MinHistoryPeriods is the minimum number of periods required before
	// CAGR-type indicators are computed (fewer periods → neutral default).
	MinHistoryPeriods int `json:"min_history_periods"`
}

// Categories returns the six category criteria in scoring order.
func (c *Criteria) Categories() []CategoryCriteria {
	return []CategoryCriteria{
		c.Profitability, c.Growth, c.Stability,
		c.Efficiency, c.Valuation, c.Quality,
	}
}

// TotalIndicators counts configured indicators across all categories.
func (c *Criteria) TotalIndicators() int {
	n := 0
	for _, cat := range c.Categories() {
		n += len(cat.Indicators)
	}
	return n
}

// Validate checks structural soundness: per category, indicator maxima sum
// to the category maximum, bands are monotonic in both threshold and
// points, and neutral defaults sit strictly inside (0, max).
func (c *Criteria) Validate() error {
	for _, cat := range c.Categories() {
		sum := 0.0
		for _, ic := range cat.Indicators {
			sum += ic.MaxPoints
			if ic.NeutralPoints <= 0 || ic.NeutralPoints >= ic.MaxPoints {
				return fmt.Errorf("%w: %s/%s neutral=%.1f max=%.1f",
					ErrNeutralOutOfRange, cat.Name, ic.Key, ic.NeutralPoints, ic.MaxPoints)
			}
			if err := validateBands(ic); err != nil {
				return fmt.Errorf("%s/%s: %w", cat.Name, ic.Key, err)
			}
		}
		if sum != cat.MaxPoints {
			return fmt.Errorf("%w: %s indicator points sum %.1f != category max %.1f",
				ErrInvalidCriteria, cat.Name, sum, cat.MaxPoints)
		}
	}
	if len(c.GradeLadder) == 0 || len(c.TargetPrice.Tiers) == 0 {
		return ErrInvalidCriteria
	}
	for i := 1; i < len(c.GradeLadder); i++ {
		if c.GradeLadder[i].MinPct >= c.GradeLadder[i-1].MinPct {
			return fmt.Errorf("%w: grade ladder not descending", ErrInvalidCriteria)
		}
	}
	if c.MinHistoryPeriods < 2 {
		return fmt.Errorf("%w: min history periods must be >= 2", ErrInvalidCriteria)
	}
	return nil
}

func validateBands(ic IndicatorCriteria) error {
	prev := ic.Bands
	for i := 1; i < len(prev); i++ {
		thresholdOK := prev[i].Threshold < prev[i-1].Threshold
		if ic.LowerIsBetter {
			thresholdOK = prev[i].Threshold > prev[i-1].Threshold
		}
		if !thresholdOK || prev[i].Points >= prev[i-1].Points {
			return ErrBandsNotMonotonic
		}
	}
	for _, b := range ic.Bands {
		if b.Points < 0 || b.Points > ic.MaxPoints {
			return fmt.Errorf("%w: band points outside [0, max]", ErrInvalidCriteria)
		}
	}
	if len(ic.Bands) > 0 && ic.FloorPoints >= ic.Bands[len(ic.Bands)-1].Points {
		return ErrBandsNotMonotonic
	}
	return nil
}

// LoadCriteriaFile reads a criteria override from a JSON file and
// validates it. Used when CRITERIA_FILE is set; otherwise callers use
// DefaultCriteria.
func LoadCriteriaFile(path string) (*Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria file: %w", err)
	}
	var c Criteria
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse criteria file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
