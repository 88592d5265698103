package metrics

import (
	"time"
)

// MetricSet is the normalized financial record for one company on one
// analysis date. It is built by the external data layer and never mutated
// by the engine. All monetary figures share one currency and one unit.
//
// Absent figures are nil, never zero: zero is a valid reported value
// (e.g. total debt of a debt-free company) and must not be conflated
// with missing data.
type MetricSet struct {
	Symbol       string    `json:"symbol"`        // 종목 코드 (6자리 숫자)
	Name         string    `json:"name"`          // 종목명
	AnalysisDate time.Time `json:"analysis_date"` // 분석 기준일

	// 손익계산서 (최근 회계연도)
	Revenue         *float64 `json:"revenue"`          // 매출액
	OperatingIncome *float64 `json:"operating_income"` // 영업이익
	NetIncome       *float64 `json:"net_income"`       // 당기순이익

	// 연도별 이력 (오래된 것 → 최신, 최대 5개 연도)
	RevenueHistory   []float64 `json:"revenue_history"`    // 매출액 이력
	NetIncomeHistory []float64 `json:"net_income_history"` // 순이익 이력

	// 재무상태표
	TotalAssets        *float64 `json:"total_assets"`         // 자산총계
	ShareholdersEquity *float64 `json:"shareholders_equity"`  // 자본총계
	CurrentAssets      *float64 `json:"current_assets"`       // 유동자산
	CurrentLiabilities *float64 `json:"current_liabilities"`  // 유동부채
	TotalDebt          *float64 `json:"total_debt"`           // 총차입금
	CashAndEquivalents *float64 `json:"cash_and_equivalents"` // 현금및현금성자산

	// 주당 지표
	EPS *float64 `json:"eps"` // 주당순이익
}

// MarketData carries the optional market-side inputs for valuation and
// target-price estimation. A MetricSet without MarketData is still
// scorable; the valuation category then falls back to its neutral band.
type MarketData struct {
	Price             *float64 `json:"price"`              // 현재가
	SharesOutstanding *float64 `json:"shares_outstanding"` // 상장주식수
	MarketCap         *float64 `json:"market_cap"`         // 시가총액
}

// ValidateSymbol validates stock symbol format (6-digit number).
func ValidateSymbol(symbol string) error {
	if len(symbol) != 6 {
		return ErrInvalidSymbol
	}
	for _, c := range symbol {
		if c < '0' || c > '9' {
			return ErrInvalidSymbol
		}
	}
	return nil
}

// Validate checks structural invariants of the metric set. Missing figures
// are fine; mismatched history lengths or a bad symbol are not.
func (m *MetricSet) Validate() error {
	if err := ValidateSymbol(m.Symbol); err != nil {
		return err
	}
	if m.AnalysisDate.IsZero() {
		return ErrMissingAnalysisDate
	}
	if len(m.RevenueHistory) > 5 || len(m.NetIncomeHistory) > 5 {
		return ErrHistoryTooLong
	}
	return nil
}

// HasMarket reports whether market data is usable for valuation scoring.
func (d *MarketData) HasMarket() bool {
	return d != nil && d.Price != nil && *d.Price > 0
}

// Float returns a pointer to v. Convenience for building literal fixtures
// and for the repository layer.
func Float(v float64) *float64 {
	return &v
}
