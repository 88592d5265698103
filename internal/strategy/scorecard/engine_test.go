package scorecard

import (
	"reflect"
	"testing"
	"time"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

// samsungFixture mirrors the reported FY figures of a large, stable
// electronics manufacturer. Units are KRW.
func samsungFixture() (*metrics.MetricSet, *metrics.MarketData) {
	m := &metrics.MetricSet{
		Symbol:       "005930",
		Name:         "삼성전자",
		AnalysisDate: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),

		Revenue:         metrics.Float(279_600_000_000_000),
		OperatingIncome: metrics.Float(37_700_000_000_000),
		NetIncome:       metrics.Float(26_900_000_000_000),

		RevenueHistory: []float64{
			200_000_000_000_000, 240_000_000_000_000,
			260_000_000_000_000, 279_600_000_000_000,
		},
		NetIncomeHistory: []float64{
			19_000_000_000_000, 23_000_000_000_000,
			25_000_000_000_000, 26_900_000_000_000,
		},

		TotalAssets:        metrics.Float(400_000_000_000_000),
		ShareholdersEquity: metrics.Float(286_700_000_000_000),
		CurrentAssets:      metrics.Float(180_000_000_000_000),
		CurrentLiabilities: metrics.Float(60_000_000_000_000),
		TotalDebt:          metrics.Float(30_000_000_000_000),
		CashAndEquivalents: metrics.Float(100_000_000_000_000),

		EPS: metrics.Float(4500),
	}
	md := &metrics.MarketData{
		Price:             metrics.Float(72000),
		SharesOutstanding: metrics.Float(5_900_000_000),
	}
	return m, md
}

func findDetail(t *testing.T, cat scorecard.CategoryScore, name string) scorecard.ScoreDetail {
	t.Helper()
	for _, d := range cat.Details {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("detail %q not found in category %s", name, cat.Category)
	return scorecard.ScoreDetail{}
}

func TestAnalyzeSamsung(t *testing.T) {
	e := newTestEngine(t)
	m, md := samsungFixture()

	a := e.Analyze(m, md)

	if a.Symbol != "005930" || a.Name != "삼성전자" {
		t.Errorf("identity not carried: %s %s", a.Symbol, a.Name)
	}
	if a.TotalScore <= 0 || a.TotalScore > scorecard.MaxTotalScore {
		t.Errorf("total score out of range: %v", a.TotalScore)
	}
	if !a.DataSufficient {
		t.Error("expected fully populated fixture to be data sufficient")
	}
	if a.ComputedIndicators != a.TotalIndicators {
		t.Errorf("expected all %d indicators computed, got %d",
			a.TotalIndicators, a.ComputedIndicators)
	}

	// Stability is pristine: zero-ish debt ratio, 3.0 current ratio,
	// 72% equity ratio, 3.3x cash coverage.
	if a.Stability.ActualScore != a.Stability.MaxScore {
		t.Errorf("expected max stability, got %v/%v",
			a.Stability.ActualScore, a.Stability.MaxScore)
	}
	if a.RiskLevel != scorecard.RiskLow {
		t.Errorf("expected Low risk, got %s", a.RiskLevel)
	}

	if a.InvestmentGrade != scorecard.Buy {
		t.Errorf("expected Buy, got %s", a.InvestmentGrade)
	}
	if a.OverallGrade != "B+" {
		t.Errorf("expected B+ grade, got %s", a.OverallGrade)
	}

	if a.TargetPriceLow <= 0 || a.TargetPriceHigh <= a.TargetPriceLow {
		t.Errorf("expected positive target band, got [%v, %v]",
			a.TargetPriceLow, a.TargetPriceHigh)
	}
	if a.InvestmentThesis == "" {
		t.Error("expected investment thesis")
	}
}

// Scenario A: ROE of ~9.38% sits just under the 10% acceptance threshold.
func TestROEJustBelowAcceptableBand(t *testing.T) {
	e := newTestEngine(t)
	m, md := samsungFixture()

	a := e.Analyze(m, md)
	roe := findDetail(t, a.Profitability, "ROE (자기자본이익률)")

	if roe.Value == nil {
		t.Fatal("expected computed ROE value")
	}
	if *roe.Value < 0.09 || *roe.Value > 0.10 {
		t.Errorf("expected ROE in [9%%, 10%%], got %v", *roe.Value)
	}
	// Strictly below both the "good" (6) and "acceptable" (4) band points.
	if roe.Score >= 4 {
		t.Errorf("expected ROE score below acceptable band, got %v", roe.Score)
	}
}

// Scenario B: zero total debt scores the debt-ratio indicator at its
// maximum band.
func TestZeroDebtScoresMaxDebtRatioBand(t *testing.T) {
	e := newTestEngine(t)
	m := &metrics.MetricSet{
		Symbol:       "000100",
		Name:         "무차입",
		AnalysisDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		TotalDebt:    metrics.Float(0),
		TotalAssets:  metrics.Float(100),
	}

	a := e.Analyze(m, nil)
	debt := findDetail(t, a.Stability, "부채비율")

	if debt.Value == nil || *debt.Value != 0 {
		t.Fatalf("expected debt ratio 0, got %v", debt.Value)
	}
	if debt.Score != debt.MaxScore {
		t.Errorf("expected max band %v, got %v", debt.MaxScore, debt.Score)
	}
}

// Scenario C: unavailable shares outstanding yields the absent-estimate
// signal, not a division error.
func TestTargetPriceAbsentWithoutShares(t *testing.T) {
	e := newTestEngine(t)
	m, md := samsungFixture()

	t.Run("zero shares", func(t *testing.T) {
		md := &metrics.MarketData{Price: md.Price, SharesOutstanding: metrics.Float(0)}
		a := e.Analyze(m, md)
		if a.TargetPriceLow != 0 || a.TargetPriceHigh != 0 {
			t.Errorf("expected absent estimate, got [%v, %v]", a.TargetPriceLow, a.TargetPriceHigh)
		}
	})

	t.Run("unknown shares", func(t *testing.T) {
		md := &metrics.MarketData{Price: md.Price}
		a := e.Analyze(m, md)
		if a.TargetPriceLow != 0 || a.TargetPriceHigh != 0 {
			t.Errorf("expected absent estimate, got [%v, %v]", a.TargetPriceLow, a.TargetPriceHigh)
		}
	})

	t.Run("no market data", func(t *testing.T) {
		a := e.Analyze(m, nil)
		if a.TargetPriceLow != 0 || a.TargetPriceHigh != 0 {
			t.Errorf("expected absent estimate, got [%v, %v]", a.TargetPriceLow, a.TargetPriceHigh)
		}
	})
}

// Scenario D: two periods of history are not enough for CAGR; the
// indicator falls back to its neutral default instead of zero.
func TestShortHistoryFallsBackToNeutral(t *testing.T) {
	e := newTestEngine(t)
	m := &metrics.MetricSet{
		Symbol:         "000200",
		Name:           "신규상장",
		AnalysisDate:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		RevenueHistory: []float64{100, 120},
	}

	a := e.Analyze(m, nil)
	cagr := findDetail(t, a.Growth, "매출 성장률 (CAGR)")

	if cagr.Value != nil {
		t.Errorf("expected uncomputed CAGR, got %v", *cagr.Value)
	}
	neutral := mustIndicator(t, e.Criteria().Growth, scorecard.IndRevenueCAGR).NeutralPoints
	if cagr.Score != neutral {
		t.Errorf("expected neutral score %v, got %v", neutral, cagr.Score)
	}
	if cagr.Score == 0 {
		t.Error("neutral default must not be zero")
	}
}

// Scenario E: 90/110 with stability 75% and profitability 72% is a Buy,
// not a Strong Buy, because the total percentage is below 85%.
func TestInvestmentGradeGating(t *testing.T) {
	e := newTestEngine(t)

	got := e.classifyInvestmentGrade(90.0/110.0*100, 75, 72)
	if got != scorecard.Buy {
		t.Errorf("expected Buy, got %s", got)
	}

	t.Run("strong buy needs both gates", func(t *testing.T) {
		if got := e.classifyInvestmentGrade(90, 75, 72); got != scorecard.StrongBuy {
			t.Errorf("expected Strong Buy at 90%% with both gates passed, got %s", got)
		}
		if got := e.classifyInvestmentGrade(90, 75, 60); got != scorecard.Buy {
			t.Errorf("expected Buy when profitability gate fails, got %s", got)
		}
		if got := e.classifyInvestmentGrade(90, 60, 90); got != scorecard.Hold {
			t.Errorf("expected Hold when stability gate fails, got %s", got)
		}
	})

	t.Run("lower tiers", func(t *testing.T) {
		if got := e.classifyInvestmentGrade(66, 10, 10); got != scorecard.Hold {
			t.Errorf("expected Hold, got %s", got)
		}
		if got := e.classifyInvestmentGrade(56, 10, 10); got != scorecard.WeakHold {
			t.Errorf("expected Weak Hold, got %s", got)
		}
		if got := e.classifyInvestmentGrade(40, 10, 10); got != scorecard.Sell {
			t.Errorf("expected Sell, got %s", got)
		}
	})
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	m, md := samsungFixture()

	first := e.Analyze(m, md)
	second := e.Analyze(m, md)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results from identical inputs")
	}
}

func TestScoresStayInBounds(t *testing.T) {
	e := newTestEngine(t)

	fixtures := map[string]*metrics.MetricSet{
		"empty": {
			Symbol:       "000300",
			AnalysisDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		"distressed": {
			Symbol:             "000400",
			AnalysisDate:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Revenue:            metrics.Float(0),
			NetIncome:          metrics.Float(-500),
			TotalAssets:        metrics.Float(0),
			ShareholdersEquity: metrics.Float(0),
			TotalDebt:          metrics.Float(900),
			NetIncomeHistory:   []float64{-100, -200, -500},
		},
	}

	for name, m := range fixtures {
		t.Run(name, func(t *testing.T) {
			a := e.Analyze(m, nil)
			for _, cat := range a.Categories() {
				if cat.ActualScore < 0 || cat.ActualScore > cat.MaxScore {
					t.Errorf("%s out of bounds: %v/%v", cat.Category, cat.ActualScore, cat.MaxScore)
				}
			}
			if a.TotalScore < 0 || a.TotalScore > scorecard.MaxTotalScore {
				t.Errorf("total out of bounds: %v", a.TotalScore)
			}
		})
	}
}

func TestEmptyMetricSetIsInsufficient(t *testing.T) {
	e := newTestEngine(t)
	a := e.Analyze(&metrics.MetricSet{
		Symbol:       "000300",
		AnalysisDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}, nil)

	if a.DataSufficient {
		t.Error("empty metric set must not be data sufficient")
	}
	if a.ComputedIndicators != 0 {
		t.Errorf("expected 0 computed indicators, got %d", a.ComputedIndicators)
	}
	if a.TotalScore <= 0 {
		t.Error("neutral defaults should still produce a positive total")
	}
}

// Holding everything else fixed, more net income never lowers the
// profitability score.
func TestProfitabilityMonotonicInNetIncome(t *testing.T) {
	e := newTestEngine(t)

	prev := -1.0
	for income := -50.0; income <= 300; income += 5 {
		m := &metrics.MetricSet{
			Symbol:             "000500",
			AnalysisDate:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Revenue:            metrics.Float(1000),
			OperatingIncome:    metrics.Float(150),
			NetIncome:          metrics.Float(income),
			TotalAssets:        metrics.Float(2000),
			ShareholdersEquity: metrics.Float(1000),
		}
		score := e.scoreProfitability(m).ActualScore
		if score < prev {
			t.Fatalf("profitability dropped from %v to %v at net income %v", prev, score, income)
		}
		prev = score
	}
}

// The grade ladder is a total order: a higher total never maps to a
// strictly lower letter grade.
func TestGradeLadderIsTotalOrder(t *testing.T) {
	e := newTestEngine(t)

	rank := func(grade string) int {
		for i, band := range e.Criteria().GradeLadder {
			if band.Grade == grade {
				return i
			}
		}
		t.Fatalf("unknown grade %q", grade)
		return -1
	}

	prevRank := len(e.Criteria().GradeLadder)
	for pct := 0.0; pct <= 100; pct += 0.5 {
		r := rank(e.classifyGrade(pct))
		if r > prevRank {
			t.Fatalf("grade order violated at %v%%", pct)
		}
		prevRank = r
	}

	if e.classifyGrade(100) != "A++" {
		t.Errorf("expected A++ at 100%%, got %s", e.classifyGrade(100))
	}
	if e.classifyGrade(10) != "F" {
		t.Errorf("expected F at 10%%, got %s", e.classifyGrade(10))
	}
}

func TestValuationNeutralWithoutMarketData(t *testing.T) {
	e := newTestEngine(t)
	m, _ := samsungFixture()

	a := e.Analyze(m, nil)

	want := 0.0
	for _, ic := range e.Criteria().Valuation.Indicators {
		want += ic.NeutralPoints
	}
	if a.Valuation.ActualScore != want {
		t.Errorf("expected neutral valuation %v, got %v", want, a.Valuation.ActualScore)
	}
	if a.Valuation.Computed != 0 {
		t.Errorf("expected no computed valuation indicators, got %d", a.Valuation.Computed)
	}
}

func mustIndicator(t *testing.T, cc scorecard.CategoryCriteria, key string) scorecard.IndicatorCriteria {
	t.Helper()
	ic, ok := cc.Indicator(key)
	if !ok {
		t.Fatalf("indicator %q not configured", key)
	}
	return ic
}
