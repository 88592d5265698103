package response

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wonny/valuescan/internal/api/middleware"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes
const (
	ErrCodeInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
)

// Error sends an error response
func Error(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	errorWithDetails(w, r, statusCode, code, message, "")
}

func errorWithDetails(w http.ResponseWriter, r *http.Request, statusCode int, code, message, details string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: middleware.GetRequestID(r),
			Timestamp: time.Now(),
		},
	}

	log.Error().
		Str("request_id", resp.Error.RequestID).
		Str("error_code", code).
		Str("message", message).
		Int("status", statusCode).
		Msg("API error response")

	writeJSON(w, statusCode, resp)
}

// BadRequest sends a 400 Bad Request error
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusBadRequest, ErrCodeInvalidParameter, message)
}

// NotFound sends a 404 Not Found error
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusNotFound, ErrCodeNotFound, message)
}

// Conflict sends a 409 Conflict error
func Conflict(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusConflict, ErrCodeConflict, message)
}

// InternalError sends a 500 Internal Server Error
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	details := ""
	if err != nil {
		details = err.Error()
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r)).
			Msg("Internal server error")
	}
	errorWithDetails(w, r, http.StatusInternalServerError, ErrCodeInternalServer,
		"An unexpected error occurred", details)
}

// DatabaseError sends a database error response
func DatabaseError(w http.ResponseWriter, r *http.Request, err error) {
	details := ""
	if err != nil {
		details = err.Error()
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r)).
			Msg("Database error")
	}
	errorWithDetails(w, r, http.StatusInternalServerError, ErrCodeDatabaseError,
		"Database operation failed", details)
}
