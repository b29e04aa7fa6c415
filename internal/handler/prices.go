package handler

import (
	"net/http"

	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/pricing"
)

// HandleGetPrice looks up market prices for an item by name.
func HandleGetPrice(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		quote, err := svc.Lookup(r.Context(), name)
		if err != nil {
			log.Error("Price lookup failed", "name", name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: quote})
	}
}
