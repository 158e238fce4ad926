package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/validators"
	"github.com/MKhiriev/go-derma-records/models"
)

type referenceService struct {
	referenceSymptomRepository store.ReferenceSymptomRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewReferenceService(referenceSymptomRepository store.ReferenceSymptomRepository, validator validators.Validator, logger *logger.Logger) ReferenceService {
	return &referenceService{
		referenceSymptomRepository: referenceSymptomRepository,
		validator:                  validator,
		logger:                     logger,
	}
}

func (s *referenceService) List(ctx context.Context, category string) ([]models.ReferenceSymptom, error) {
	if category == "" {
		return s.referenceSymptomRepository.List(ctx)
	}

	return s.referenceSymptomRepository.ListByCategory(ctx, category)
}

// AddCustom stores a user-supplied red flag, defaulting the category to
// "custom" and the priority to 3. A duplicate text fails with
// [store.ErrConflict].
func (s *referenceService) AddCustom(ctx context.Context, in models.CustomSymptom) (models.ReferenceSymptom, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.ReferenceSymptom{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	category := in.Category
	if category == "" {
		category = models.CustomSymptomCategory
	}
	priority := models.CustomSymptomPriority
	if in.Priority != nil {
		priority = *in.Priority
	}

	return s.referenceSymptomRepository.AddCustom(ctx, in.Text, category, priority)
}
