package handler

import (
	"net/http"

	"github.com/luooka/casebot/internal/catalog"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/metrics"
)

// HandleListContainers lists the known container names grouped by type.
func HandleListContainers(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grouped := svc.List()
		if len(grouped) == 0 {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCatalogEmptyError)
			return
		}

		// JSON keys must be strings, not ContainerType.
		out := make(map[string][]string, len(grouped))
		for typ, names := range grouped {
			out[string(typ)] = names
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// SyncResponse reports how many containers a sync collected.
type SyncResponse struct {
	Containers int `json:"containers"`
}

// HandleSyncCatalog refreshes the catalog from upstream. Sync walks every
// container with a throttled request each, so this can take minutes on a
// full refresh.
func HandleSyncCatalog(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		log.Info("Catalog sync started")
		count, err := svc.Sync(r.Context())
		if err != nil {
			metrics.CatalogSyncsTotal.WithLabelValues(metrics.ResultFailure).Inc()
			log.Error("Catalog sync failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		metrics.CatalogSyncsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
		metrics.CatalogContainers.Set(float64(count))
		log.Info("Catalog sync finished", "containers", count)
		respondJSON(w, http.StatusOK, DataResponse{
			Message: "Catalog synced",
			Data:    SyncResponse{Containers: count},
		})
	}
}
