package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/valuescan/internal/api/routes"
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/service/analysis"
	engine "github.com/wonny/valuescan/internal/strategy/scorecard"
)

type stubReader struct {
	sets map[string]*metrics.MetricSet
}

func (s *stubReader) GetMetricSet(ctx context.Context, symbol string, date time.Time) (*metrics.MetricSet, error) {
	m, ok := s.sets[symbol]
	if !ok {
		return nil, metrics.ErrMetricsNotFound
	}
	c := *m
	c.AnalysisDate = date
	return &c, nil
}

func (s *stubReader) GetMarketData(ctx context.Context, symbol string, date time.Time) (*metrics.MarketData, error) {
	return nil, nil
}

func (s *stubReader) ListSymbols(ctx context.Context) ([]string, error) {
	return nil, nil
}

type stubRepo struct {
	saved map[string]*scorecard.Analysis
}

func (s *stubRepo) Save(ctx context.Context, a *scorecard.Analysis) error {
	s.saved[a.Symbol] = a
	return nil
}

func (s *stubRepo) GetLatest(ctx context.Context, symbol string) (*scorecard.Analysis, error) {
	a, ok := s.saved[symbol]
	if !ok {
		return nil, scorecard.ErrAnalysisNotFound
	}
	return a, nil
}

func (s *stubRepo) GetByDate(ctx context.Context, symbol string, date time.Time) (*scorecard.Analysis, error) {
	return s.GetLatest(ctx, symbol)
}

func (s *stubRepo) GetTopByScore(ctx context.Context, date time.Time, limit int) ([]*scorecard.Analysis, error) {
	var out []*scorecard.Analysis
	for _, a := range s.saved {
		out = append(out, a)
	}
	return out, nil
}

func newTestRouter(t *testing.T) (*mux.Router, *stubRepo) {
	t.Helper()

	eng, err := engine.NewEngine(nil)
	require.NoError(t, err)

	reader := &stubReader{sets: map[string]*metrics.MetricSet{
		"005930": {
			Symbol:             "005930",
			Name:               "삼성전자",
			Revenue:            metrics.Float(1000),
			NetIncome:          metrics.Float(100),
			TotalAssets:        metrics.Float(2000),
			ShareholdersEquity: metrics.Float(1200),
		},
	}}
	repo := &stubRepo{saved: make(map[string]*scorecard.Analysis)}

	router := mux.NewRouter()
	routes.RegisterAnalysisRoutes(router, analysis.NewService(eng, reader, repo))
	return router, repo
}

func TestAnalyzeEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/005930?date=2025-07-15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data scorecard.Analysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "005930", body.Data.Symbol)
	assert.Greater(t, body.Data.TotalScore, 0.0)
	assert.Contains(t, repo.saved, "005930")
}

func TestAnalyzeEndpointInvalidSymbol(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/AAPL12", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLatestNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/000660/latest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestGetLatestAfterAnalyze(t *testing.T) {
	router, _ := newTestRouter(t)

	analyze := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/005930", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, analyze)
	require.Equal(t, http.StatusCreated, rec.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/005930/latest", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data scorecard.Analysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "삼성전자", body.Data.Name)
}

func TestExportEndpointCSV(t *testing.T) {
	router, _ := newTestRouter(t)

	analyze := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/005930", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, analyze)
	require.Equal(t, http.StatusCreated, rec.Code)

	export := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/export?format=csv", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, export)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "005930")
}
