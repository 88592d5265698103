package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wonny/valuescan/internal/api/middleware"
)

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// Meta represents metadata in response
type Meta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Success sends a successful response with data
func Success(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(r),
			Timestamp: time.Now(),
		},
	})
}

// SuccessList sends a successful response with list data and count
func SuccessList(w http.ResponseWriter, r *http.Request, data interface{}, count int) {
	writeJSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(r),
			Timestamp: time.Now(),
			Count:     count,
		},
	})
}

// Created sends a 201 Created response
func Created(w http.ResponseWriter, r *http.Request, data interface{}, message string) {
	writeJSON(w, http.StatusCreated, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(r),
			Timestamp: time.Now(),
			Message:   message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
