package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/validators"
	"github.com/MKhiriev/go-derma-records/models"
)

type retentionService struct {
	analysisRepository store.AnalysisRepository
	deletionRepository store.DeletionRepository

	validator validators.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewRetentionService(
	analysisRepository store.AnalysisRepository,
	deletionRepository store.DeletionRepository,
	validator validators.Validator,
	m *metrics.Metrics,
	logger *logger.Logger,
) RetentionService {
	return &retentionService{
		analysisRepository: analysisRepository,
		deletionRepository: deletionRepository,
		validator:          validator,
		metrics:            m,
		logger:             logger,
	}
}

// RequestDeletion records the intent to delete. The analysis itself is
// left untouched and does not need to exist.
func (s *retentionService) RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	if err := s.validator.Validate(ctx, analysisID, validators.FieldAnalysisID); err != nil {
		return models.DeletionRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rec, err := s.deletionRepository.RequestDeletion(ctx, analysisID)
	if err != nil {
		return models.DeletionRecord{}, err
	}
	s.metrics.DeletionRequested()

	return rec, nil
}

func (s *retentionService) CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	if err := s.validator.Validate(ctx, analysisID, validators.FieldAnalysisID); err != nil {
		return models.DeletionRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.deletionRepository.CompleteDeletion(ctx, analysisID)
}

func (s *retentionService) ListExpiring(ctx context.Context) ([]models.AnalysisRecord, error) {
	return s.deletionRepository.ListExpiring(ctx)
}

// PurgeExpired requests, performs and completes the deletion of every
// expiring record. A failure on one record does not stop the others; all
// failures are returned joined.
func (s *retentionService) PurgeExpired(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	expiring, err := s.deletionRepository.ListExpiring(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing expiring records: %w", err)
	}

	purged := 0
	var errs []error
	for _, rec := range expiring {
		if err = s.purge(ctx, rec.ID); err != nil {
			log.Err(err).Str("func", "retentionService.PurgeExpired").Str("analysis_id", rec.ID).Msg("failed to purge expired record")
			errs = append(errs, fmt.Errorf("purging %s: %w", rec.ID, err))
			continue
		}
		purged++
	}

	if len(expiring) > 0 {
		log.Info().
			Str("func", "retentionService.PurgeExpired").
			Int("expiring", len(expiring)).
			Int("purged", purged).
			Msg("expired records purged")
	}

	return purged, errors.Join(errs...)
}

func (s *retentionService) purge(ctx context.Context, analysisID string) error {
	if _, err := s.deletionRepository.RequestDeletion(ctx, analysisID); err != nil {
		return err
	}
	s.metrics.DeletionRequested()

	deleted, err := s.analysisRepository.Delete(ctx, analysisID)
	if err != nil {
		return err
	}
	if deleted {
		s.metrics.RecordDeleted(metrics.DeletionSourcePurge)
	}

	_, err = s.deletionRepository.CompleteDeletion(ctx, analysisID)
	return err
}
