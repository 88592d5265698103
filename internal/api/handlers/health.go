package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wonny/valuescan/internal/api/response"
	"github.com/wonny/valuescan/internal/infra/database/postgres"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	dbPool    *postgres.Pool
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dbPool *postgres.Pool, version string) *HealthHandler {
	return &HealthHandler{
		dbPool:    dbPool,
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents a readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// DetailedHealthResponse represents detailed health information
type DetailedHealthResponse struct {
	Status        string                     `json:"status"`
	Version       string                     `json:"version"`
	UptimeSeconds int64                      `json:"uptime_seconds"`
	Timestamp     time.Time                  `json:"timestamp"`
	Components    map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string                 `json:"status"`
	Latency string                 `json:"latency"`
	Details map[string]interface{} `json:"details,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writePlainJSON(w, http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Ready returns readiness check with dependency checks
// GET /health/ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := "ready"
	statusCode := http.StatusOK
	message := ""

	dbHealth := h.dbPool.Health(r.Context())
	if dbHealth.Status == "healthy" {
		checks["database"] = "ok"
	} else {
		checks["database"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
		message = "Database connection failed"
	}

	writePlainJSON(w, statusCode, ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	})
}

// Detailed returns detailed system health information
// GET /api/health/detailed
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]ComponentHealth)
	overallStatus := "healthy"

	dbHealth := h.dbPool.Health(r.Context())

	dbComponent := ComponentHealth{
		Status:  dbHealth.Status,
		Latency: dbHealth.Latency,
		Details: map[string]interface{}{
			"active_conns": dbHealth.ActiveConns,
			"idle_conns":   dbHealth.IdleConns,
			"total_conns":  dbHealth.TotalConns,
			"max_conns":    dbHealth.MaxConns,
		},
	}
	if dbHealth.Error != "" {
		dbComponent.Message = dbHealth.Error
	}
	components["database"] = dbComponent

	if dbHealth.Status == "unhealthy" {
		overallStatus = "unhealthy"
	} else if dbHealth.Status == "degraded" {
		overallStatus = "degraded"
	}

	response.Success(w, r, DetailedHealthResponse{
		Status:        overallStatus,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now(),
		Components:    components,
	})
}

func writePlainJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
