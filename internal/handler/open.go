package handler

import (
	"net/http"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/opening"
)

// OpenCaseRequest is the body of a case-opening request.
type OpenCaseRequest struct {
	GroupID   string `json:"group_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	UserID    string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Container string `json:"container" validate:"required,max=100"`
	Count     int    `json:"count" validate:"min=0,max=10000"`
}

// HandleOpenCase opens a container for a user. An exhausted daily quota is a
// 200 with Opened == 0; the caller decides how to phrase the refusal.
func HandleOpenCase(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, ok := decodeAndValidate[OpenCaseRequest](w, r)
		if !ok {
			return
		}

		resp, err := svc.Open(r.Context(), opening.Request{
			User:          domain.UserKey{GroupID: req.GroupID, UserID: req.UserID},
			ContainerName: req.Container,
			Count:         req.Count,
		})
		if err != nil {
			log.Error("Open failed", "container", req.Container, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		message := ""
		switch {
		case resp.Opened == 0:
			message = "Daily opening limit reached"
		case resp.Clamped:
			message = "Opened fewer than requested; daily allowance nearly spent"
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: message, Data: resp})
	}
}
