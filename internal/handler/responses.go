package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/luooka/casebot/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgContainerNotFoundError = "Container not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgEmptyPoolError         = "That container has nothing openable"
	ErrMsgCatalogEmptyError      = "Catalog is not loaded yet. Run a sync first."
	ErrMsgLedgerBusyError        = "Quota ledger is temporarily unavailable. Please retry."
	ErrMsgUpstreamError          = "Upstream catalog service is unavailable"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrContainerNotFound):
		return http.StatusNotFound, ErrMsgContainerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusBadRequest, ErrMsgEmptyPoolError
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, ErrMsgCatalogEmptyError
	case errors.Is(err, domain.ErrLedgerTransaction):
		return http.StatusServiceUnavailable, ErrMsgLedgerBusyError
	case errors.Is(err, domain.ErrUpstreamFetch):
		return http.StatusBadGateway, ErrMsgUpstreamError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
