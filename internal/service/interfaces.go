package service

import (
	"context"

	"github.com/MKhiriev/go-derma-records/models"
)

// AnalysisService is the record store as seen by the UI and by the
// local-inference collaborator.
type AnalysisService interface {
	Create(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error)
	Get(ctx context.Context, id string) (models.AnalysisRecord, error)
	UpdateSymptoms(ctx context.Context, id string, symptoms string, redFlags *[]string) (models.AnalysisRecord, error)
	UpdateLocalInferenceResult(ctx context.Context, id string, update models.LocalInferenceUpdate) (models.AnalysisRecord, error)
	UpdateNotes(ctx context.Context, id string, notes string) (models.AnalysisRecord, error)
	SetRetentionPolicy(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error)
	MarkEncrypted(ctx context.Context, id string) (models.AnalysisRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListLogs(ctx context.Context, id string) ([]models.ProcessingLogEntry, error)
}

// StatusService drives the cloud analysis state machine.
type StatusService interface {
	SetStatus(ctx context.Context, id string, change models.StatusChange) (models.AnalysisRecord, error)
}

// RetentionService exposes the deletion ledger and the expiry scan.
type RetentionService interface {
	RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	ListExpiring(ctx context.Context) ([]models.AnalysisRecord, error)

	// PurgeExpired runs the full deletion workflow for every expiring
	// record and returns how many records were removed.
	PurgeExpired(ctx context.Context) (int, error)
}

type ReferenceService interface {
	// List returns the whole catalog when category is empty.
	List(ctx context.Context, category string) ([]models.ReferenceSymptom, error)
	AddCustom(ctx context.Context, in models.CustomSymptom) (models.ReferenceSymptom, error)
}

type QueryService interface {
	List(ctx context.Context, query models.ListQuery) (models.ListResult, error)
	ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// AuthService issues and verifies admin bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the storage answers.
type HealthService interface {
	Ping(ctx context.Context) error
}
