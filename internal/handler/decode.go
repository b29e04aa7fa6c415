package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luooka/casebot/internal/logger"
)

// decodeAndValidate decodes a JSON body into T and runs struct validation.
// On failure it writes the error response and returns ok == false.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	log := logger.FromContext(r.Context())

	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode request body", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return req, false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Request validation failed", "error", err)
		respondJSON(w, http.StatusBadRequest, DataResponse{
			Message: ErrMsgInvalidRequestError,
			Data:    FormatValidationError(err),
		})
		return req, false
	}

	return req, true
}
