package handler

import (
	"net/http"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/quota"
)

// ResetQuotaRequest identifies whose daily allowance to reset.
type ResetQuotaRequest struct {
	GroupID string `json:"group_id" validate:"required,max=64"`
	UserID  string `json:"user_id" validate:"required,max=64"`
}

// HandleResetQuota clears a user's usage for the current period.
func HandleResetQuota(q quota.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, ok := decodeAndValidate[ResetQuotaRequest](w, r)
		if !ok {
			return
		}

		user := domain.UserKey{GroupID: req.GroupID, UserID: req.UserID}
		if err := q.Reset(r.Context(), user); err != nil {
			log.Error("Failed to reset quota", "user", user.String(), "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Quota reset", "user", user.String())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Quota reset"})
	}
}
