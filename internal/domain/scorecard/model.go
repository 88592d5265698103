package scorecard

import (
	"time"

	"github.com/google/uuid"
)

// MaxTotalScore is the scorecard ceiling: six weighted categories summing
// to 110 points.
const MaxTotalScore = 110.0

// InvestmentGrade 투자 등급
type InvestmentGrade string

const (
	StrongBuy InvestmentGrade = "Strong Buy"
	Buy       InvestmentGrade = "Buy"
	Hold      InvestmentGrade = "Hold"
	WeakHold  InvestmentGrade = "Weak Hold"
	Sell      InvestmentGrade = "Sell"
)

// RiskLevel 리스크 수준
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// QualityRating 품질 등급
type QualityRating string

const (
	QualityHigh    QualityRating = "High"
	QualityGood    QualityRating = "Good"
	QualityAverage QualityRating = "Average"
)

// ScoreDetail is one itemized indicator line inside a category score.
// Value is nil when the indicator's inputs were unknown and the neutral
// default was applied.
type ScoreDetail struct {
	Name        string   `json:"name"`        // 지표명
	Value       *float64 `json:"value"`       // 지표값 (nil = 산출 불가)
	Score       float64  `json:"score"`       // 획득 점수
	MaxScore    float64  `json:"max_score"`   // 배점
	Description string   `json:"description"` // 산출 근거
}

// Percentage returns the earned share of this indicator's points.
func (d ScoreDetail) Percentage() float64 {
	if d.MaxScore <= 0 {
		return 0
	}
	return d.Score / d.MaxScore * 100
}

// CategoryScore 카테고리별 점수
type CategoryScore struct {
	Category    string        `json:"category"`     // 카테고리명
	MaxScore    float64       `json:"max_score"`    // 배점
	ActualScore float64       `json:"actual_score"` // 획득 점수
	Details     []ScoreDetail `json:"details"`      // 지표별 상세

	// Computed counts indicators whose inputs were available; used for
	// the data-sufficiency flag.
	Computed int `json:"computed"`
}

// Percentage returns earned points as a share of the category maximum.
func (c CategoryScore) Percentage() float64 {
	if c.MaxScore <= 0 {
		return 0
	}
	return c.ActualScore / c.MaxScore * 100
}

// Grade returns the per-category letter grade.
func (c CategoryScore) Grade() string {
	pct := c.Percentage()
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B+"
	case pct >= 60:
		return "B"
	case pct >= 50:
		return "C+"
	case pct >= 40:
		return "C"
	case pct >= 30:
		return "D"
	default:
		return "F"
	}
}

// Analysis is the immutable result of scoring one company on one analysis
// date. The engine produces it fully populated except AnalysisID, which is
// assigned by the persistence layer so that re-scoring identical inputs
// stays deterministic.
type Analysis struct {
	AnalysisID   uuid.UUID `json:"analysis_id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	AnalysisDate time.Time `json:"analysis_date"`

	TotalScore    float64 `json:"total_score"`
	MaxTotalScore float64 `json:"max_total_score"`

	// 카테고리별 점수
	Profitability CategoryScore `json:"profitability"`
	Growth        CategoryScore `json:"growth"`
	Stability     CategoryScore `json:"stability"`
	Efficiency    CategoryScore `json:"efficiency"`
	Valuation     CategoryScore `json:"valuation"`
	Quality       CategoryScore `json:"quality"`

	// 종합 평가
	OverallGrade    string          `json:"overall_grade"`
	InvestmentGrade InvestmentGrade `json:"investment_grade"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	QualityRating   QualityRating   `json:"quality_rating"`

	// 분석 결과
	KeyStrengths     []string `json:"key_strengths"`
	KeyWeaknesses    []string `json:"key_weaknesses"`
	InvestmentThesis string   `json:"investment_thesis"`
	TargetPriceLow   float64  `json:"target_price_low"`
	TargetPriceHigh  float64  `json:"target_price_high"`

	// 데이터 충분성: 전체 지표 중 절반 이상이 산출 가능했는지
	DataSufficient     bool `json:"data_sufficient"`
	ComputedIndicators int  `json:"computed_indicators"`
	TotalIndicators    int  `json:"total_indicators"`
}

// ScorePercentage returns the total score as a percentage of the ceiling.
func (a *Analysis) ScorePercentage() float64 {
	if a.MaxTotalScore <= 0 {
		return 0
	}
	return a.TotalScore / a.MaxTotalScore * 100
}

// Categories returns the six category scores in fixed order.
func (a *Analysis) Categories() []CategoryScore {
	return []CategoryScore{
		a.Profitability, a.Growth, a.Stability,
		a.Efficiency, a.Valuation, a.Quality,
	}
}
