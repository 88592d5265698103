package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wonny/valuescan/internal/domain/metrics"
)

// statementHistoryDepth caps how many fiscal periods feed the growth and
// quality indicators.
const statementHistoryDepth = 5

// MetricsRepository PostgreSQL 재무 지표 저장소 (data.financial_statements)
// 외부 수집 계층이 적재한 정규화 재무 데이터를 읽기 전용으로 제공
type MetricsRepository struct {
	pool *Pool
}

// NewMetricsRepository 저장소 생성
func NewMetricsRepository(pool *Pool) *MetricsRepository {
	return &MetricsRepository{pool: pool}
}

// statementRow is one fiscal period, scanned through NUMERIC-safe decimals.
type statementRow struct {
	fiscalDate         time.Time
	revenue            decimal.NullDecimal
	operatingIncome    decimal.NullDecimal
	netIncome          decimal.NullDecimal
	totalAssets        decimal.NullDecimal
	shareholdersEquity decimal.NullDecimal
	currentAssets      decimal.NullDecimal
	currentLiabilities decimal.NullDecimal
	totalDebt          decimal.NullDecimal
	cashAndEquivalents decimal.NullDecimal
	eps                decimal.NullDecimal
}

// GetMetricSet assembles the metric set for a symbol as of a date: the
// latest fiscal period supplies the point-in-time figures, older periods
// supply the revenue and net income histories (oldest first).
func (r *MetricsRepository) GetMetricSet(ctx context.Context, symbol string, date time.Time) (*metrics.MetricSet, error) {
	query := `
		SELECT
			fiscal_date, revenue, operating_income, net_income,
			total_assets, shareholders_equity, current_assets, current_liabilities,
			total_debt, cash_and_equivalents, eps
		FROM data.financial_statements
		WHERE symbol = $1 AND fiscal_date <= $2::date
		ORDER BY fiscal_date DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, symbol, date, statementHistoryDepth)
	if err != nil {
		return nil, fmt.Errorf("query financial statements: %w", err)
	}
	defer rows.Close()

	var periods []statementRow
	for rows.Next() {
		var s statementRow
		err := rows.Scan(
			&s.fiscalDate, &s.revenue, &s.operatingIncome, &s.netIncome,
			&s.totalAssets, &s.shareholdersEquity, &s.currentAssets, &s.currentLiabilities,
			&s.totalDebt, &s.cashAndEquivalents, &s.eps,
		)
		if err != nil {
			return nil, fmt.Errorf("scan financial statement: %w", err)
		}
		periods = append(periods, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate financial statements: %w", err)
	}
	if len(periods) == 0 {
		return nil, metrics.ErrMetricsNotFound
	}

	name, err := r.stockName(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// Rows arrive newest first; histories want oldest first.
	latest := periods[0]
	m := &metrics.MetricSet{
		Symbol:       symbol,
		Name:         name,
		AnalysisDate: date,

		Revenue:            toFloat(latest.revenue),
		OperatingIncome:    toFloat(latest.operatingIncome),
		NetIncome:          toFloat(latest.netIncome),
		TotalAssets:        toFloat(latest.totalAssets),
		ShareholdersEquity: toFloat(latest.shareholdersEquity),
		CurrentAssets:      toFloat(latest.currentAssets),
		CurrentLiabilities: toFloat(latest.currentLiabilities),
		TotalDebt:          toFloat(latest.totalDebt),
		CashAndEquivalents: toFloat(latest.cashAndEquivalents),
		EPS:                toFloat(latest.eps),
	}

	for i := len(periods) - 1; i >= 0; i-- {
		if v := toFloat(periods[i].revenue); v != nil {
			m.RevenueHistory = append(m.RevenueHistory, *v)
		}
		if v := toFloat(periods[i].netIncome); v != nil {
			m.NetIncomeHistory = append(m.NetIncomeHistory, *v)
		}
	}

	return m, nil
}

// GetMarketData returns the market snapshot for a symbol as of a date, or
// nil when no price data is available.
func (r *MetricsRepository) GetMarketData(ctx context.Context, symbol string, date time.Time) (*metrics.MarketData, error) {
	query := `
		SELECT close_price, shares_outstanding, market_cap
		FROM data.market_snapshots
		WHERE symbol = $1 AND snapshot_date <= $2::date
		ORDER BY snapshot_date DESC
		LIMIT 1
	`

	var price, shares, marketCap decimal.NullDecimal
	err := r.pool.QueryRow(ctx, query, symbol, date).Scan(&price, &shares, &marketCap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query market snapshot: %w", err)
	}

	return &metrics.MarketData{
		Price:             toFloat(price),
		SharesOutstanding: toFloat(shares),
		MarketCap:         toFloat(marketCap),
	}, nil
}

// ListSymbols 재무 데이터가 있는 활성 종목 코드 조회
func (r *MetricsRepository) ListSymbols(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT s.symbol
		FROM data.stocks s
		JOIN data.financial_statements f ON f.symbol = s.symbol
		WHERE s.is_active
		ORDER BY s.symbol
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate symbols: %w", err)
	}

	return symbols, nil
}

func (r *MetricsRepository) stockName(ctx context.Context, symbol string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx,
		`SELECT name FROM data.stocks WHERE symbol = $1`, symbol).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("query stock name: %w", err)
	}
	return name, nil
}

// toFloat converts a nullable NUMERIC into the engine's optional float.
func toFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}
