package handler

import (
	"net/http"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/inventory"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/quota"
)

// userKeyFromQuery extracts the user key from query parameters.
func userKeyFromQuery(r *http.Request) (domain.UserKey, bool) {
	key := domain.UserKey{
		GroupID: r.URL.Query().Get("group_id"),
		UserID:  r.URL.Query().Get("user_id"),
	}
	return key, key.GroupID != "" && key.UserID != ""
}

// InventoryResponse pairs holdings with the current quota state so chat
// front-ends can render both in one message.
type InventoryResponse struct {
	Stats *domain.InventoryStats `json:"stats"`
	Quota quota.Result           `json:"quota"`
}

// HandleGetInventory reports a user's accumulated drops and quota usage.
func HandleGetInventory(inv inventory.Service, q quota.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		user, ok := userKeyFromQuery(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		stats, err := inv.Stats(r.Context(), user)
		if err != nil {
			log.Error("Failed to get inventory stats", "user", user.String(), "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		usage, err := q.Peek(r.Context(), user)
		if err != nil {
			log.Error("Failed to get quota usage", "user", user.String(), "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Data: InventoryResponse{Stats: stats, Quota: usage},
		})
	}
}

// PurgeInventoryRequest identifies whose inventory to clear.
type PurgeInventoryRequest struct {
	GroupID string `json:"group_id" validate:"required,max=64"`
	UserID  string `json:"user_id" validate:"required,max=64"`
}

// HandlePurgeInventory clears a user's recorded drops.
func HandlePurgeInventory(inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, ok := decodeAndValidate[PurgeInventoryRequest](w, r)
		if !ok {
			return
		}

		user := domain.UserKey{GroupID: req.GroupID, UserID: req.UserID}
		if err := inv.Purge(r.Context(), user); err != nil {
			log.Error("Failed to purge inventory", "user", user.String(), "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Inventory purged", "user", user.String())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inventory cleared"})
	}
}
