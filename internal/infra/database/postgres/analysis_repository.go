package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/wonny/valuescan/internal/domain/scorecard"
)

// AnalysisRepository PostgreSQL 분석 결과 저장소 (analysis.scorecards)
// (symbol, analysis_date) 기준 1건, 재분석 시 교체
type AnalysisRepository struct {
	pool *Pool
}

// NewAnalysisRepository 저장소 생성
func NewAnalysisRepository(pool *Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

// categoriesDoc is the JSONB shape of the six category scores.
type categoriesDoc struct {
	Profitability scorecard.CategoryScore `json:"profitability"`
	Growth        scorecard.CategoryScore `json:"growth"`
	Stability     scorecard.CategoryScore `json:"stability"`
	Efficiency    scorecard.CategoryScore `json:"efficiency"`
	Valuation     scorecard.CategoryScore `json:"valuation"`
	Quality       scorecard.CategoryScore `json:"quality"`
}

// Save upserts an analysis result for its (symbol, analysis_date).
func (r *AnalysisRepository) Save(ctx context.Context, a *scorecard.Analysis) error {
	categories, err := json.Marshal(categoriesDoc{
		Profitability: a.Profitability,
		Growth:        a.Growth,
		Stability:     a.Stability,
		Efficiency:    a.Efficiency,
		Valuation:     a.Valuation,
		Quality:       a.Quality,
	})
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	query := `
		INSERT INTO analysis.scorecards (
			analysis_id, symbol, name, analysis_date,
			total_score, max_total_score,
			overall_grade, investment_grade, risk_level, quality_rating,
			categories, key_strengths, key_weaknesses, investment_thesis,
			target_price_low, target_price_high,
			data_sufficient, computed_indicators, total_indicators
		) VALUES (
			$1, $2, $3, $4,
			$5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16,
			$17, $18, $19
		)
		ON CONFLICT (symbol, analysis_date) DO UPDATE SET
			analysis_id = EXCLUDED.analysis_id,
			name = EXCLUDED.name,
			total_score = EXCLUDED.total_score,
			max_total_score = EXCLUDED.max_total_score,
			overall_grade = EXCLUDED.overall_grade,
			investment_grade = EXCLUDED.investment_grade,
			risk_level = EXCLUDED.risk_level,
			quality_rating = EXCLUDED.quality_rating,
			categories = EXCLUDED.categories,
			key_strengths = EXCLUDED.key_strengths,
			key_weaknesses = EXCLUDED.key_weaknesses,
			investment_thesis = EXCLUDED.investment_thesis,
			target_price_low = EXCLUDED.target_price_low,
			target_price_high = EXCLUDED.target_price_high,
			data_sufficient = EXCLUDED.data_sufficient,
			computed_indicators = EXCLUDED.computed_indicators,
			total_indicators = EXCLUDED.total_indicators
	`

	_, err = r.pool.Exec(ctx, query,
		a.AnalysisID, a.Symbol, a.Name, a.AnalysisDate,
		a.TotalScore, a.MaxTotalScore,
		a.OverallGrade, string(a.InvestmentGrade), string(a.RiskLevel), string(a.QualityRating),
		categories, a.KeyStrengths, a.KeyWeaknesses, a.InvestmentThesis,
		a.TargetPriceLow, a.TargetPriceHigh,
		a.DataSufficient, a.ComputedIndicators, a.TotalIndicators,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return scorecard.ErrDuplicateAnalysis
		}
		return fmt.Errorf("save analysis: %w", err)
	}

	log.Debug().
		Str("symbol", a.Symbol).
		Str("analysis_id", a.AnalysisID.String()).
		Float64("total_score", a.TotalScore).
		Msg("Saved analysis")

	return nil
}

const analysisColumns = `
	analysis_id, symbol, name, analysis_date,
	total_score, max_total_score,
	overall_grade, investment_grade, risk_level, quality_rating,
	categories, key_strengths, key_weaknesses, investment_thesis,
	target_price_low, target_price_high,
	data_sufficient, computed_indicators, total_indicators
`

// GetLatest 최신 분석 결과 조회
func (r *AnalysisRepository) GetLatest(ctx context.Context, symbol string) (*scorecard.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analysis.scorecards
		WHERE symbol = $1
		ORDER BY analysis_date DESC
		LIMIT 1
	`
	return scanAnalysis(r.pool.QueryRow(ctx, query, symbol))
}

// GetByDate 특정 일자 분석 결과 조회
func (r *AnalysisRepository) GetByDate(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analysis.scorecards
		WHERE symbol = $1 AND analysis_date = $2::date
	`
	return scanAnalysis(r.pool.QueryRow(ctx, query, symbol, date))
}

// GetTopByScore 일자별 상위 분석 결과 조회
func (r *AnalysisRepository) GetTopByScore(ctx context.Context, date time.Time, limit int) ([]*scorecard.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analysis.scorecards
		WHERE analysis_date = $1::date
		ORDER BY total_score DESC, symbol
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, date, limit)
	if err != nil {
		return nil, fmt.Errorf("query top analyses: %w", err)
	}
	defer rows.Close()

	var results []*scorecard.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top analyses: %w", err)
	}

	return results, nil
}

func scanAnalysis(row pgx.Row) (*scorecard.Analysis, error) {
	var (
		a          scorecard.Analysis
		categories []byte
	)
	err := row.Scan(
		&a.AnalysisID, &a.Symbol, &a.Name, &a.AnalysisDate,
		&a.TotalScore, &a.MaxTotalScore,
		&a.OverallGrade, &a.InvestmentGrade, &a.RiskLevel, &a.QualityRating,
		&categories, &a.KeyStrengths, &a.KeyWeaknesses, &a.InvestmentThesis,
		&a.TargetPriceLow, &a.TargetPriceHigh,
		&a.DataSufficient, &a.ComputedIndicators, &a.TotalIndicators,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scorecard.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("scan analysis: %w", err)
	}

	var doc categoriesDoc
	if err := json.Unmarshal(categories, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	a.Profitability = doc.Profitability
	a.Growth = doc.Growth
	a.Stability = doc.Stability
	a.Efficiency = doc.Efficiency
	a.Valuation = doc.Valuation
	a.Quality = doc.Quality

	return &a, nil
}

// isUniqueViolation reports a PostgreSQL unique constraint error (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
