package catalog

import (
	"context"

	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/metrics"
)

// SyncJob refreshes the catalog on a schedule.
type SyncJob struct {
	svc Service
}

// NewSyncJob creates a worker job wrapping Service.Sync.
func NewSyncJob(svc Service) *SyncJob {
	return &SyncJob{svc: svc}
}

func (j *SyncJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Scheduled catalog sync starting")

	count, err := j.svc.Sync(ctx)
	if err != nil {
		metrics.CatalogSyncsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	metrics.CatalogSyncsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CatalogContainers.Set(float64(count))
	log.Info("Scheduled catalog sync finished", "containers", count)
	return nil
}
