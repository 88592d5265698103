package routes

import (
	"github.com/gorilla/mux"
	"github.com/wonny/valuescan/internal/api/handlers"
	"github.com/wonny/valuescan/internal/service/analysis"
)

// RegisterAnalysisRoutes registers all scorecard analysis routes
func RegisterAnalysisRoutes(router *mux.Router, svc *analysis.Service) {
	handler := handlers.NewAnalysisHandler(svc)

	// Fixed paths before the {symbol} wildcard
	router.HandleFunc("/api/v1/analyses/top", handler.GetTop).Methods("GET")
	router.HandleFunc("/api/v1/analyses/export", handler.Export).Methods("GET")

	router.HandleFunc("/api/v1/analyses/{symbol}", handler.Analyze).Methods("POST")
	router.HandleFunc("/api/v1/analyses/{symbol}/latest", handler.GetLatest).Methods("GET")
	router.HandleFunc("/api/v1/analyses/{symbol}", handler.GetByDate).Methods("GET")
}
