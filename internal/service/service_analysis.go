// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/validators"
	"github.com/MKhiriev/go-derma-records/models"
)

// analysisService validates record store inputs and forwards them to the
// repositories. Audit entries are written by the repositories inside the
// same transaction as the change they describe.
type analysisService struct {
	analysisRepository      store.AnalysisRepository
	processingLogRepository store.ProcessingLogRepository

	validator validators.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewAnalysisService(
	analysisRepository store.AnalysisRepository,
	processingLogRepository store.ProcessingLogRepository,
	validator validators.Validator,
	m *metrics.Metrics,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		analysisRepository:      analysisRepository,
		processingLogRepository: processingLogRepository,
		validator:               validator,
		metrics:                 m,
		logger:                  logger,
	}
}

// Create stores a new pending record. Absent required inputs and unknown
// enum values fail with [ErrValidation]; empty symptoms are accepted.
func (s *analysisService) Create(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "analysisService.Create").Msg("invalid analysis input")
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rec, err := s.analysisRepository.Create(ctx, in)
	if err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("analysis creation ended with error: %w", err)
	}
	s.metrics.RecordCreated()

	return rec, nil
}

func (s *analysisService) Get(ctx context.Context, id string) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}

	return s.analysisRepository.GetByID(ctx, id)
}

func (s *analysisService) UpdateSymptoms(ctx context.Context, id string, symptoms string, redFlags *[]string) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}

	return s.analysisRepository.UpdateSymptoms(ctx, id, symptoms, redFlags)
}

// UpdateLocalInferenceResult records the on-device model output. The cloud
// status of the record is left as is.
func (s *analysisService) UpdateLocalInferenceResult(ctx context.Context, id string, update models.LocalInferenceUpdate) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.analysisRepository.UpdateLocalInferenceResult(ctx, id, *update.Result, update.Confidence)
}

func (s *analysisService) UpdateNotes(ctx context.Context, id string, notes string) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}

	return s.analysisRepository.UpdateNotes(ctx, id, notes)
}

func (s *analysisService) SetRetentionPolicy(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}
	if err := s.validator.Validate(ctx, policy); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.analysisRepository.SetRetentionPolicy(ctx, id, policy)
}

func (s *analysisService) MarkEncrypted(ctx context.Context, id string) (models.AnalysisRecord, error) {
	if err := s.validateID(ctx, id); err != nil {
		return models.AnalysisRecord{}, err
	}

	return s.analysisRepository.MarkEncrypted(ctx, id)
}

// Delete removes the record. Unknown ids report false without an error.
func (s *analysisService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.validateID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.analysisRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.metrics.RecordDeleted(metrics.DeletionSourceAPI)
		logger.FromContext(ctx).Info().Str("func", "analysisService.Delete").Str("analysis_id", id).Msg("analysis record deleted")
	}

	return deleted, nil
}

// ListLogs returns the audit trail of the analysis. Entries survive the
// deletion of the record, so an unknown id is not an error.
func (s *analysisService) ListLogs(ctx context.Context, id string) ([]models.ProcessingLogEntry, error) {
	if err := s.validateID(ctx, id); err != nil {
		return nil, err
	}

	return s.processingLogRepository.ListFor(ctx, id)
}

func (s *analysisService) validateID(ctx context.Context, id string) error {
	if err := s.validator.Validate(ctx, id, validators.FieldAnalysisID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
