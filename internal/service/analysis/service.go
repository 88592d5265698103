// Package analysis orchestrates the scoring pipeline: load normalized
// metrics, run the scorecard engine, persist the result.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	engine "github.com/wonny/valuescan/internal/strategy/scorecard"
)

// Service 기업 분석 서비스
type Service struct {
	engine  *engine.Engine
	reader  scorecard.MetricsReader
	repo    scorecard.AnalysisRepository
	inflight singleflight.Group
}

// NewService 새 서비스 생성
func NewService(eng *engine.Engine, reader scorecard.MetricsReader, repo scorecard.AnalysisRepository) *Service {
	return &Service{
		engine: eng,
		reader: reader,
		repo:   repo,
	}
}

// AnalyzeSymbol scores one company as of the given date and persists the
// result. Concurrent requests for the same (symbol, date) share a single
// computation.
func (s *Service) AnalyzeSymbol(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	if err := metrics.ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%s", symbol, date.Format("2006-01-02"))
	result, err, shared := s.inflight.Do(key, func() (interface{}, error) {
		return s.analyze(ctx, symbol, date)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug().Str("symbol", symbol).Msg("Analysis request coalesced")
	}

	return result.(*scorecard.Analysis), nil
}

func (s *Service) analyze(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	m, err := s.reader.GetMetricSet(ctx, symbol, date)
	if err != nil {
		return nil, fmt.Errorf("load metrics for %s: %w", symbol, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	md, err := s.reader.GetMarketData(ctx, symbol, date)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).
			Msg("Market data unavailable, scoring without valuation inputs")
		md = nil
	}

	a := s.engine.Analyze(m, md)
	a.AnalysisID = uuid.New()

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save analysis for %s: %w", symbol, err)
	}

	log.Info().
		Str("symbol", a.Symbol).
		Str("name", a.Name).
		Float64("total_score", a.TotalScore).
		Str("grade", a.OverallGrade).
		Str("investment_grade", string(a.InvestmentGrade)).
		Msg("Analysis complete")

	return a, nil
}

// GetLatest 최신 분석 결과 조회
func (s *Service) GetLatest(ctx context.Context, symbol string) (*scorecard.Analysis, error) {
	if err := metrics.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	return s.repo.GetLatest(ctx, symbol)
}

// GetByDate 특정 일자 분석 결과 조회
func (s *Service) GetByDate(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	if err := metrics.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	return s.repo.GetByDate(ctx, symbol, date)
}

// GetTopByScore 일자별 상위 분석 결과 조회
func (s *Service) GetTopByScore(ctx context.Context, date time.Time, limit int) ([]*scorecard.Analysis, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.GetTopByScore(ctx, date, limit)
}
