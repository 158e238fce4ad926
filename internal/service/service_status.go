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

// statusService moves records along the cloud analysis lifecycle
// pending -> processing -> completed | failed. Re-entering any state,
// failed -> processing included, is allowed.
type statusService struct {
	analysisRepository store.AnalysisRepository

	validator validators.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewStatusService(analysisRepository store.AnalysisRepository, validator validators.Validator, m *metrics.Metrics, logger *logger.Logger) StatusService {
	return &statusService{
		analysisRepository: analysisRepository,
		validator:          validator,
		metrics:            m,
		logger:             logger,
	}
}

// SetStatus applies change to the record. A transition to completed must
// carry the full synthesis output; pending and unknown targets are
// rejected with [ErrValidation].
func (s *statusService) SetStatus(ctx context.Context, id string, change models.StatusChange) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, id, validators.FieldAnalysisID); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.validator.Validate(ctx, change); err != nil {
		log.Warn().Err(err).
			Str("func", "statusService.SetStatus").
			Str("analysis_id", id).
			Str("status", string(change.Status)).
			Msg("invalid status change")
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rec, err := s.analysisRepository.SetStatus(ctx, id, change.Status, change.Payload)
	if err != nil {
		if errors.Is(err, store.ErrIncompleteStatusPayload) || errors.Is(err, store.ErrUnsupportedStatus) {
			return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return models.AnalysisRecord{}, err
	}
	s.metrics.StatusChanged(string(change.Status))

	return rec, nil
}
