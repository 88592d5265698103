package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	engine "github.com/wonny/valuescan/internal/strategy/scorecard"
)

type fakeReader struct {
	sets    map[string]*metrics.MetricSet
	market  map[string]*metrics.MarketData
	symbols []string
}

func (f *fakeReader) GetMetricSet(ctx context.Context, symbol string, date time.Time) (*metrics.MetricSet, error) {
	m, ok := f.sets[symbol]
	if !ok {
		return nil, metrics.ErrMetricsNotFound
	}
	c := *m
	c.AnalysisDate = date
	return &c, nil
}

func (f *fakeReader) GetMarketData(ctx context.Context, symbol string, date time.Time) (*metrics.MarketData, error) {
	return f.market[symbol], nil
}

func (f *fakeReader) ListSymbols(ctx context.Context) ([]string, error) {
	return f.symbols, nil
}

type fakeRepo struct {
	mu    sync.Mutex
	saved map[string]*scorecard.Analysis
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: make(map[string]*scorecard.Analysis)}
}

func (f *fakeRepo) key(symbol string, date time.Time) string {
	return fmt.Sprintf("%s:%s", symbol, date.Format("2006-01-02"))
}

func (f *fakeRepo) Save(ctx context.Context, a *scorecard.Analysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[f.key(a.Symbol, a.AnalysisDate)] = a
	return nil
}

func (f *fakeRepo) GetLatest(ctx context.Context, symbol string) (*scorecard.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *scorecard.Analysis
	for _, a := range f.saved {
		if a.Symbol != symbol {
			continue
		}
		if latest == nil || a.AnalysisDate.After(latest.AnalysisDate) {
			latest = a
		}
	}
	if latest == nil {
		return nil, scorecard.ErrAnalysisNotFound
	}
	return latest, nil
}

func (f *fakeRepo) GetByDate(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.saved[f.key(symbol, date)]
	if !ok {
		return nil, scorecard.ErrAnalysisNotFound
	}
	return a, nil
}

func (f *fakeRepo) GetTopByScore(ctx context.Context, date time.Time, limit int) ([]*scorecard.Analysis, error) {
	return nil, nil
}

func solidMetricSet(symbol string) *metrics.MetricSet {
	return &metrics.MetricSet{
		Symbol:             symbol,
		Name:               "테스트기업",
		Revenue:            metrics.Float(1000),
		OperatingIncome:    metrics.Float(150),
		NetIncome:          metrics.Float(100),
		RevenueHistory:     []float64{800, 900, 1000},
		NetIncomeHistory:   []float64{70, 85, 100},
		TotalAssets:        metrics.Float(2000),
		ShareholdersEquity: metrics.Float(1200),
		CurrentAssets:      metrics.Float(600),
		CurrentLiabilities: metrics.Float(300),
		TotalDebt:          metrics.Float(200),
		CashAndEquivalents: metrics.Float(300),
		EPS:                metrics.Float(500),
	}
}

func newTestService(t *testing.T, reader *fakeReader, repo *fakeRepo) *Service {
	t.Helper()
	eng, err := engine.NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return NewService(eng, reader, repo)
}

func TestAnalyzeSymbol(t *testing.T) {
	reader := &fakeReader{
		sets:   map[string]*metrics.MetricSet{"005930": solidMetricSet("005930")},
		market: map[string]*metrics.MarketData{"005930": {Price: metrics.Float(5000), SharesOutstanding: metrics.Float(10)}},
	}
	repo := newFakeRepo()
	svc := newTestService(t, reader, repo)

	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	a, err := svc.AnalyzeSymbol(context.Background(), "005930", date)
	if err != nil {
		t.Fatalf("AnalyzeSymbol failed: %v", err)
	}

	if a.AnalysisID == uuid.Nil {
		t.Error("expected an assigned analysis id")
	}
	if a.TotalScore <= 0 {
		t.Errorf("expected positive score, got %v", a.TotalScore)
	}

	saved, err := repo.GetByDate(context.Background(), "005930", date)
	if err != nil {
		t.Fatalf("expected analysis persisted: %v", err)
	}
	if saved.AnalysisID != a.AnalysisID {
		t.Error("persisted analysis differs from returned one")
	}
}

func TestAnalyzeSymbolValidation(t *testing.T) {
	svc := newTestService(t, &fakeReader{}, newFakeRepo())

	if _, err := svc.AnalyzeSymbol(context.Background(), "AAPL", time.Now()); !errors.Is(err, metrics.ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}

	if _, err := svc.AnalyzeSymbol(context.Background(), "999999", time.Now()); !errors.Is(err, metrics.ErrMetricsNotFound) {
		t.Errorf("expected ErrMetricsNotFound, got %v", err)
	}
}

func TestRunBatch(t *testing.T) {
	reader := &fakeReader{
		sets: map[string]*metrics.MetricSet{
			"000100": solidMetricSet("000100"),
			"000200": solidMetricSet("000200"),
		},
		market:  map[string]*metrics.MarketData{},
		symbols: []string{"000100", "000200", "000300"}, // 000300 has no metrics
	}
	repo := newFakeRepo()
	svc := newTestService(t, reader, repo)

	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	result, err := svc.RunBatch(context.Background(), date, 2)
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if result.Analyzed != 2 {
		t.Errorf("Analyzed = %d, want 2", result.Analyzed)
	}
	if len(result.Failed) != 1 || result.Failed[0] != "000300" {
		t.Errorf("Failed = %v, want [000300]", result.Failed)
	}

	for _, symbol := range []string{"000100", "000200"} {
		if _, err := repo.GetByDate(context.Background(), symbol, date); err != nil {
			t.Errorf("expected %s persisted: %v", symbol, err)
		}
	}
}
