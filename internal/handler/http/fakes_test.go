package http

import (
	"context"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/service"
	"github.com/MKhiriev/go-derma-records/models"
)

// Hand-written service fakes. A nil func field answers with the zero value.

type fakeAnalysisService struct {
	createFn               func(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error)
	getFn                  func(ctx context.Context, id string) (models.AnalysisRecord, error)
	updateSymptomsFn       func(ctx context.Context, id, symptoms string, redFlags *[]string) (models.AnalysisRecord, error)
	updateLocalInferenceFn func(ctx context.Context, id string, update models.LocalInferenceUpdate) (models.AnalysisRecord, error)
	updateNotesFn          func(ctx context.Context, id, notes string) (models.AnalysisRecord, error)
	setRetentionPolicyFn   func(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error)
	markEncryptedFn        func(ctx context.Context, id string) (models.AnalysisRecord, error)
	deleteFn               func(ctx context.Context, id string) (bool, error)
	listLogsFn             func(ctx context.Context, id string) ([]models.ProcessingLogEntry, error)
}

func (f *fakeAnalysisService) Create(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return models.AnalysisRecord{}, nil
}

func (f *fakeAnalysisService) Get(ctx context.Context, id string) (models.AnalysisRecord, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.AnalysisRecord{ID: id}, nil
}

func (f *fakeAnalysisService) UpdateSymptoms(ctx context.Context, id string, symptoms string, redFlags *[]string) (models.AnalysisRecord, error) {
	if f.updateSymptomsFn != nil {
		return f.updateSymptomsFn(ctx, id, symptoms, redFlags)
	}
	return models.AnalysisRecord{ID: id}, nil
}

func (f *fakeAnalysisService) UpdateLocalInferenceResult(ctx context.Context, id string, update models.LocalInferenceUpdate) (models.AnalysisRecord, error) {
	if f.updateLocalInferenceFn != nil {
		return f.updateLocalInferenceFn(ctx, id, update)
	}
	return models.AnalysisRecord{ID: id}, nil
}

func (f *fakeAnalysisService) UpdateNotes(ctx context.Context, id string, notes string) (models.AnalysisRecord, error) {
	if f.updateNotesFn != nil {
		return f.updateNotesFn(ctx, id, notes)
	}
	return models.AnalysisRecord{ID: id}, nil
}

func (f *fakeAnalysisService) SetRetentionPolicy(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error) {
	if f.setRetentionPolicyFn != nil {
		return f.setRetentionPolicyFn(ctx, id, policy)
	}
	return models.AnalysisRecord{ID: id}, nil
}

func (f *fakeAnalysisService) MarkEncrypted(ctx context.Context, id string) (models.AnalysisRecord, error) {
	if f.markEncryptedFn != nil {
		return f.markEncryptedFn(ctx, id)
	}
	return models.AnalysisRecord{ID: id, IsEncrypted: true}, nil
}

func (f *fakeAnalysisService) Delete(ctx context.Context, id string) (bool, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return false, nil
}

func (f *fakeAnalysisService) ListLogs(ctx context.Context, id string) ([]models.ProcessingLogEntry, error) {
	if f.listLogsFn != nil {
		return f.listLogsFn(ctx, id)
	}
	return []models.ProcessingLogEntry{}, nil
}

type fakeStatusService struct {
	setStatusFn func(ctx context.Context, id string, change models.StatusChange) (models.AnalysisRecord, error)
}

func (f *fakeStatusService) SetStatus(ctx context.Context, id string, change models.StatusChange) (models.AnalysisRecord, error) {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, id, change)
	}
	return models.AnalysisRecord{ID: id, CloudAnalysisStatus: change.Status}, nil
}

type fakeRetentionService struct {
	requestDeletionFn  func(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	completeDeletionFn func(ctx context.Context, analysisID string) (models.DeletionRecord, error)
	listExpiringFn     func(ctx context.Context) ([]models.AnalysisRecord, error)
	purgeExpiredFn     func(ctx context.Context) (int, error)
}

func (f *fakeRetentionService) RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	if f.requestDeletionFn != nil {
		return f.requestDeletionFn(ctx, analysisID)
	}
	return models.DeletionRecord{AnalysisID: analysisID, Status: models.DeletionPending}, nil
}

func (f *fakeRetentionService) CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	if f.completeDeletionFn != nil {
		return f.completeDeletionFn(ctx, analysisID)
	}
	return models.DeletionRecord{AnalysisID: analysisID, Status: models.DeletionCompleted}, nil
}

func (f *fakeRetentionService) ListExpiring(ctx context.Context) ([]models.AnalysisRecord, error) {
	if f.listExpiringFn != nil {
		return f.listExpiringFn(ctx)
	}
	return []models.AnalysisRecord{}, nil
}

func (f *fakeRetentionService) PurgeExpired(ctx context.Context) (int, error) {
	if f.purgeExpiredFn != nil {
		return f.purgeExpiredFn(ctx)
	}
	return 0, nil
}

type fakeReferenceService struct {
	listFn      func(ctx context.Context, category string) ([]models.ReferenceSymptom, error)
	addCustomFn func(ctx context.Context, in models.CustomSymptom) (models.ReferenceSymptom, error)
}

func (f *fakeReferenceService) List(ctx context.Context, category string) ([]models.ReferenceSymptom, error) {
	if f.listFn != nil {
		return f.listFn(ctx, category)
	}
	return []models.ReferenceSymptom{}, nil
}

func (f *fakeReferenceService) AddCustom(ctx context.Context, in models.CustomSymptom) (models.ReferenceSymptom, error) {
	if f.addCustomFn != nil {
		return f.addCustomFn(ctx, in)
	}
	return models.ReferenceSymptom{Text: in.Text, Category: models.CustomSymptomCategory}, nil
}

type fakeQueryService struct {
	listFn         func(ctx context.Context, query models.ListQuery) (models.ListResult, error)
	listByStatusFn func(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error)
	statsFn        func(ctx context.Context) (models.Stats, error)
}

func (f *fakeQueryService) List(ctx context.Context, query models.ListQuery) (models.ListResult, error) {
	if f.listFn != nil {
		return f.listFn(ctx, query)
	}
	return models.ListResult{Records: []models.AnalysisRecord{}, Page: query.Page, Limit: query.Limit}, nil
}

func (f *fakeQueryService) ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error) {
	if f.listByStatusFn != nil {
		return f.listByStatusFn(ctx, status, limit)
	}
	return []models.AnalysisRecord{}, nil
}

func (f *fakeQueryService) Stats(ctx context.Context) (models.Stats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return models.Stats{}, nil
}

type fakeAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) CreateToken(_ context.Context, operator string) (models.Token, error) {
	return models.Token{Operator: operator, SignedString: "signed." + operator}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString != validToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{Operator: "admin", SignedString: tokenString}, nil
}

type fakeAppInfoService struct {
	build models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.build.Version }

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo { return f.build }

type fakeHealthService struct{ err error }

func (f *fakeHealthService) Ping(context.Context) error { return f.err }

const validToken = "valid-token"

// fakeServices is a fully populated *service.Services backed by fakes.
type fakeServices struct {
	analysis  *fakeAnalysisService
	status    *fakeStatusService
	retention *fakeRetentionService
	reference *fakeReferenceService
	query     *fakeQueryService
	auth      *fakeAuthService
	appInfo   *fakeAppInfoService
}

func newFakeServices() *fakeServices {
	return &fakeServices{
		analysis:  &fakeAnalysisService{},
		status:    &fakeStatusService{},
		retention: &fakeRetentionService{},
		reference: &fakeReferenceService{},
		query:     &fakeQueryService{},
		auth:      &fakeAuthService{},
		appInfo:   &fakeAppInfoService{build: models.AppBuildInfo{Version: "v1.0.0", Date: "2026-10-01", Commit: "abc1234"}},
	}
}

func (f *fakeServices) services() *service.Services {
	return &service.Services{
		AnalysisService:  f.analysis,
		StatusService:    f.status,
		RetentionService: f.retention,
		ReferenceService: f.reference,
		QueryService:     f.query,
		AuthService:      f.auth,
		AppInfoService:   f.appInfo,
		HealthService:    &fakeHealthService{},
	}
}

func (f *fakeServices) handler() *Handler {
	return NewHandler(f.services(), nil, 0, logger.Nop())
}
