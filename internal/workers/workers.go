package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the workers enabled by cfg. The retention purger is
// only added when a positive purge interval is configured.
func NewWorkers(services *service.Services, cfg config.Retention, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.PurgeInterval > 0 {
		ws.workers = append(ws.workers, NewRetentionPurger(services.RetentionService, cfg.PurgeInterval, logger))
		logger.Info().Dur("interval", cfg.PurgeInterval).Msg("retention purger enabled")
	}

	return ws
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
