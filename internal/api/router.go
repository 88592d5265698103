package api

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/wonny/valuescan/internal/api/handlers"
	"github.com/wonny/valuescan/internal/api/middleware"
	"github.com/wonny/valuescan/internal/api/routes"
	"github.com/wonny/valuescan/internal/infra/database/postgres"
	"github.com/wonny/valuescan/internal/pkg/config"
	"github.com/wonny/valuescan/internal/pkg/logger"
	"github.com/wonny/valuescan/internal/service/analysis"
)

// Router holds all dependencies for API routing
type Router struct {
	mux     *mux.Router
	config  *config.Config
	dbPool  *postgres.Pool
	handler http.Handler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, dbPool *postgres.Pool, analysisSvc *analysis.Service, version string) *Router {
	m := mux.NewRouter()

	healthHandler := handlers.NewHealthHandler(dbPool, version)

	// Health checks (no /api prefix)
	m.HandleFunc("/health", healthHandler.Health).Methods("GET")
	m.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	m.HandleFunc("/api/health/detailed", healthHandler.Detailed).Methods("GET")

	routes.RegisterAnalysisRoutes(m, analysisSvc)

	r := &Router{
		mux:    m,
		config: cfg,
		dbPool: dbPool,
	}
	r.handler = r.wrapMiddlewares(m)

	return r
}

// wrapMiddlewares applies the global middleware chain, outermost first:
// recovery, request id, access logging, CORS.
func (r *Router) wrapMiddlewares(h http.Handler) http.Handler {
	accessLogger := logger.NewAccessLogger(
		r.config.Logging.FilePath,
		r.config.Logging.RotationSize,
		r.config.Logging.RetentionDays,
	)

	wrapped := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)(h)
	wrapped = middleware.Logging(middleware.LoggingConfig{
		AccessLogger: &accessLogger,
		SkipPaths:    []string{"/health", "/health/ready"}, // Skip health checks to reduce noise
	})(wrapped)
	wrapped = middleware.RequestID(wrapped)
	wrapped = middleware.Recovery(wrapped)

	return wrapped
}

// Handler returns the fully wrapped HTTP handler
func (r *Router) Handler() http.Handler {
	return r.handler
}
