package service

import (
	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/store"
	"github.com/MKhiriev/go-derma-records/internal/validators"
	"github.com/MKhiriev/go-derma-records/models"
)

type Services struct {
	AnalysisService  AnalysisService
	StatusService    StatusService
	RetentionService RetentionService
	ReferenceService ReferenceService
	QueryService     QueryService
	AuthService      AuthService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewAnalysisValidator()

	return &Services{
		AnalysisService:  NewAnalysisService(storages.AnalysisRepository, storages.ProcessingLogRepository, validator, m, logger),
		StatusService:    NewStatusService(storages.AnalysisRepository, validator, m, logger),
		RetentionService: NewRetentionService(storages.AnalysisRepository, storages.DeletionRepository, validator, m, logger),
		ReferenceService: NewReferenceService(storages.ReferenceSymptomRepository, validator, logger),
		QueryService:     NewQueryService(storages.QueryRepository, validator, logger),
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   appInfoService,
		HealthService:    NewHealthService(storages),
	}, nil
}
