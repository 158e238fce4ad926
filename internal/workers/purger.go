package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

// RetentionPurger periodically deletes records whose retention window has
// passed, going through the deletion ledger for each one.
type RetentionPurger struct {
	retention service.RetentionService
	interval  time.Duration

	logger *logger.Logger
}

func NewRetentionPurger(retention service.RetentionService, interval time.Duration, logger *logger.Logger) *RetentionPurger {
	return &RetentionPurger{
		retention: retention,
		interval:  interval,
		logger:    logger,
	}
}

// Run purges once per interval until ctx is cancelled. The first pass
// happens one interval after start.
func (p *RetentionPurger) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("retention purger stopped")
			return
		case <-t.C:
			p.purgeOnce(ctx)
		}
	}
}

func (p *RetentionPurger) purgeOnce(ctx context.Context) {
	ctx = p.logger.WithContext(ctx)

	purged, err := p.retention.PurgeExpired(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "RetentionPurger.purgeOnce").Int("purged", purged).Msg("retention purge finished with errors")
		return
	}

	p.logger.Debug().Str("func", "RetentionPurger.purgeOnce").Int("purged", purged).Msg("retention purge finished")
}
