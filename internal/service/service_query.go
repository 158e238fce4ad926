package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/validators"
	"github.com/MKhiriev/go-derma-records/models"
)

type queryService struct {
	queryRepository store.QueryRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewQueryService(queryRepository store.QueryRepository, validator validators.Validator, logger *logger.Logger) QueryService {
	return &queryService{
		queryRepository: queryRepository,
		validator:       validator,
		logger:          logger,
	}
}

// List returns one page of records, newest first. Page must be at least 1
// and limit positive.
func (s *queryService) List(ctx context.Context, query models.ListQuery) (models.ListResult, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.queryRepository.List(ctx, query)
}

func (s *queryService) ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error) {
	if err := s.validator.Validate(ctx, status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.validator.Validate(ctx, limit, validators.FieldLimit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.queryRepository.ListByStatus(ctx, status, limit)
}

func (s *queryService) Stats(ctx context.Context) (models.Stats, error) {
	return s.queryRepository.Stats(ctx)
}
