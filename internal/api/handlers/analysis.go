package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/wonny/valuescan/internal/api/response"
	"github.com/wonny/valuescan/internal/domain/metrics"
	"github.com/wonny/valuescan/internal/domain/scorecard"
	"github.com/wonny/valuescan/internal/service/analysis"
	"github.com/wonny/valuescan/internal/service/export"
)

// AnalysisHandler handles scorecard analysis HTTP requests
type AnalysisHandler struct {
	svc *analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// Analyze handles POST /api/v1/analyses/{symbol}
// Optional ?date=YYYY-MM-DD, default today (KST trading date).
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	date, err := parseDateParam(r, time.Now())
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	a, err := h.svc.AnalyzeSymbol(r.Context(), symbol, date)
	if err != nil {
		writeAnalysisError(w, r, err)
		return
	}

	response.Created(w, r, a, "analysis complete")
}

// GetLatest handles GET /api/v1/analyses/{symbol}/latest
func (h *AnalysisHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	a, err := h.svc.GetLatest(r.Context(), symbol)
	if err != nil {
		writeAnalysisError(w, r, err)
		return
	}

	response.Success(w, r, a)
}

// GetByDate handles GET /api/v1/analyses/{symbol}?date=YYYY-MM-DD
func (h *AnalysisHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	date, err := requireDateParam(r)
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	a, err := h.svc.GetByDate(r.Context(), symbol, date)
	if err != nil {
		writeAnalysisError(w, r, err)
		return
	}

	response.Success(w, r, a)
}

// GetTop handles GET /api/v1/analyses/top?date=YYYY-MM-DD&limit=N
func (h *AnalysisHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, time.Now())
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.svc.GetTopByScore(r.Context(), date, limit)
	if err != nil {
		writeAnalysisError(w, r, err)
		return
	}

	response.SuccessList(w, r, results, len(results))
}

// Export handles GET /api/v1/analyses/export?date=YYYY-MM-DD&format=csv|json
func (h *AnalysisHandler) Export(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, time.Now())
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	limit := 200
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.svc.GetTopByScore(r.Context(), date, limit)
	if err != nil {
		writeAnalysisError(w, r, err)
		return
	}

	filename := fmt.Sprintf("analyses_%s", date.Format("2006-01-02"))
	switch r.URL.Query().Get("format") {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
		if err := export.WriteCSV(w, results); err != nil {
			response.InternalError(w, r, err)
		}
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.json"`)
		if err := export.WriteJSON(w, results); err != nil {
			response.InternalError(w, r, err)
		}
	default:
		response.BadRequest(w, r, "format must be csv or json")
	}
}

func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, metrics.ErrInvalidSymbol):
		response.BadRequest(w, r, "symbol must be a 6-digit stock code")
	case errors.Is(err, metrics.ErrMetricsNotFound):
		response.NotFound(w, r, "no financial data for symbol")
	case errors.Is(err, scorecard.ErrAnalysisNotFound):
		response.NotFound(w, r, "analysis not found")
	case errors.Is(err, scorecard.ErrDuplicateAnalysis):
		response.Conflict(w, r, "analysis already exists for date")
	default:
		response.DatabaseError(w, r, err)
	}
}

func parseDateParam(r *http.Request, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return fallback, nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return date, nil
}

func requireDateParam(r *http.Request) (time.Time, error) {
	if r.URL.Query().Get("date") == "" {
		return time.Time{}, fmt.Errorf("date query parameter is required")
	}
	return parseDateParam(r, time.Time{})
}
