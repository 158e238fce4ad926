package store

import (
	"context"

	"github.com/MKhiriev/go-derma-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AnalysisRepository owns analysis record rows: creation, field-level
// updates, status transitions and deletion. Every mutation refreshes
// updated_at; creation and status transitions append their audit entry in
// the same transaction.
type AnalysisRepository interface {
	Create(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error)
	GetByID(ctx context.Context, id string) (models.AnalysisRecord, error)
	UpdateSymptoms(ctx context.Context, id string, symptoms string, redFlags *[]string) (models.AnalysisRecord, error)
	UpdateLocalInferenceResult(ctx context.Context, id string, result models.LocalInferenceResult, confidence float64) (models.AnalysisRecord, error)
	UpdateNotes(ctx context.Context, id string, notes string) (models.AnalysisRecord, error)
	SetRetentionPolicy(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error)
	MarkEncrypted(ctx context.Context, id string) (models.AnalysisRecord, error)
	SetStatus(ctx context.Context, id string, status models.CloudStatus, payload *models.StatusPayload) (models.AnalysisRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProcessingLogRepository is the append-only audit journal. There is no
// update or delete.
type ProcessingLogRepository interface {
	Append(ctx context.Context, analysisID, stage string, status models.LogStatus, details *string) (models.ProcessingLogEntry, error)
	ListFor(ctx context.Context, analysisID string) ([]models.ProcessingLogEntry, error)
}

// DeletionRepository is the deletion-request ledger plus the expiry scan.
type DeletionRepository interface {
	RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	ListExpiring(ctx context.Context) ([]models.AnalysisRecord, error)
}

// ReferenceSymptomRepository holds the red-flag suggestion catalog.
type ReferenceSymptomRepository interface {
	SeedIfEmpty(ctx context.Context, catalog []models.ReferenceSymptom) (int, error)
	List(ctx context.Context) ([]models.ReferenceSymptom, error)
	ListByCategory(ctx context.Context, category string) ([]models.ReferenceSymptom, error)
	AddCustom(ctx context.Context, text, category string, priority int) (models.ReferenceSymptom, error)
}

// QueryRepository serves paginated listings and aggregate statistics.
type QueryRepository interface {
	List(ctx context.Context, query models.ListQuery) (models.ListResult, error)
	ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// ErrorClassificator decides how a driver error is handled: whether the
// failed transaction may be retried and whether it is a uniqueness violation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
