package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-derma-records/models"
)

func ptr[T any](v T) *T { return &v }

func validNewAnalysis() models.NewAnalysis {
	return models.NewAnalysis{
		ImageData:       ptr("data:image/jpeg;base64,/9j/"),
		Symptoms:        ptr(""),
		RiskLevel:       ptr(models.RiskMedium),
		SkinConditions:  []string{},
		Recommendations: []string{},
		AIResponse:      ptr(""),
	}
}

func TestAnalysisValidator_NewAnalysis(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*models.NewAnalysis)
		wantErr   error
		wantField string
	}{
		{name: "minimal valid input with empty symptoms", mutate: func(*models.NewAnalysis) {}},
		{name: "all optional fields", mutate: func(in *models.NewAnalysis) {
			in.ImageFormat = models.ImageFormatPNG
			in.CaptureMethod = models.CaptureGallery
			in.RetentionPolicy = models.RetentionDeleteAfter30
			in.Confidence = ptr(1.0)
		}},
		{name: "missing image", mutate: func(in *models.NewAnalysis) { in.ImageData = nil }, wantErr: ErrInvalidField, wantField: "image_data"},
		{name: "missing symptoms", mutate: func(in *models.NewAnalysis) { in.Symptoms = nil }, wantErr: ErrInvalidField, wantField: "symptoms"},
		{name: "missing risk level", mutate: func(in *models.NewAnalysis) { in.RiskLevel = nil }, wantErr: ErrInvalidField, wantField: "risk_level"},
		{name: "unknown risk level", mutate: func(in *models.NewAnalysis) { in.RiskLevel = ptr(models.RiskLevel("severe")) }, wantErr: ErrInvalidField, wantField: "risk_level"},
		{name: "missing skin conditions", mutate: func(in *models.NewAnalysis) { in.SkinConditions = nil }, wantErr: ErrInvalidField, wantField: "skin_conditions"},
		{name: "missing recommendations", mutate: func(in *models.NewAnalysis) { in.Recommendations = nil }, wantErr: ErrInvalidField, wantField: "recommendations"},
		{name: "missing ai response", mutate: func(in *models.NewAnalysis) { in.AIResponse = nil }, wantErr: ErrInvalidField, wantField: "ai_response"},
		{name: "unknown image format", mutate: func(in *models.NewAnalysis) { in.ImageFormat = "gif" }, wantErr: ErrInvalidField, wantField: "image_format"},
		{name: "unknown capture method", mutate: func(in *models.NewAnalysis) { in.CaptureMethod = "scanner" }, wantErr: ErrInvalidField, wantField: "capture_method"},
		{name: "unknown retention policy", mutate: func(in *models.NewAnalysis) { in.RetentionPolicy = "forever" }, wantErr: ErrInvalidField, wantField: "data_retention_policy"},
		{name: "confidence above one", mutate: func(in *models.NewAnalysis) { in.Confidence = ptr(1.5) }, wantErr: ErrInvalidField, wantField: "confidence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validNewAnalysis()
			tt.mutate(&in)

			err := v.Validate(ctx, in)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NoError(t, v.Validate(ctx, &in))
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, strings.Contains(err.Error(), tt.wantField), err.Error())
		})
	}
}

func TestAnalysisValidator_StatusChange(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	full := &models.StatusPayload{
		AIResponse:      ptr("report"),
		SkinConditions:  []string{"eczema"},
		Recommendations: []string{},
		RiskLevel:       ptr(models.RiskLow),
	}

	tests := []struct {
		name    string
		change  models.StatusChange
		wantErr error
	}{
		{"processing", models.StatusChange{Status: models.CloudStatusProcessing}, nil},
		{"failed with reason", models.StatusChange{Status: models.CloudStatusFailed, Payload: &models.StatusPayload{Reason: ptr("timeout")}}, nil},
		{"completed with full payload", models.StatusChange{Status: models.CloudStatusCompleted, Payload: full}, nil},
		{"completed without payload", models.StatusChange{Status: models.CloudStatusCompleted}, ErrIncompletePayload},
		{"completed without recommendations", models.StatusChange{Status: models.CloudStatusCompleted, Payload: &models.StatusPayload{
			AIResponse:     ptr("report"),
			SkinConditions: []string{},
			RiskLevel:      ptr(models.RiskLow),
		}}, ErrIncompletePayload},
		{"pending is not a target", models.StatusChange{Status: models.CloudStatusPending}, ErrInvalidField},
		{"unknown status", models.StatusChange{Status: "archived"}, ErrInvalidField},
		{"empty status", models.StatusChange{}, ErrInvalidField},
		{"payload with unknown risk", models.StatusChange{Status: models.CloudStatusFailed, Payload: &models.StatusPayload{RiskLevel: ptr(models.RiskLevel("x"))}}, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.change)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalysisValidator_ListQuery(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ListQuery{Page: 1, Limit: 10}))
	assert.NoError(t, v.Validate(ctx, &models.ListQuery{Page: 3, Limit: 1, RiskLevel: ptr(models.RiskHigh)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ListQuery{Page: 0, Limit: 10}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.ListQuery{Page: 1, Limit: 0}), ErrInvalidField)
	assert.NoError(t, v.Validate(ctx, models.ListQuery{Page: models.MaxListPage, Limit: models.MaxListLimit}))
	assert.ErrorIs(t, v.Validate(ctx, models.ListQuery{Page: models.MaxListPage + 1, Limit: 4}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.ListQuery{Page: 1, Limit: models.MaxListLimit + 1}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.ListQuery{Page: 1, Limit: 10, RiskLevel: ptr(models.RiskLevel("none"))}), ErrInvalidField)
}

func TestAnalysisValidator_OtherStructs(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LocalInferenceUpdate{Result: &models.LocalInferenceResult{}, Confidence: 0.4}))
	assert.ErrorIs(t, v.Validate(ctx, models.LocalInferenceUpdate{Confidence: 0.4}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.LocalInferenceUpdate{Result: &models.LocalInferenceResult{}, Confidence: -1}), ErrInvalidField)

	assert.NoError(t, v.Validate(ctx, models.CustomSymptom{Text: "Lesion on the sole"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CustomSymptom{}), ErrInvalidField)
	assert.ErrorIs(t, v.Validate(ctx, models.CustomSymptom{Text: "x", Priority: ptr(-1)}), ErrInvalidField)
}

func TestAnalysisValidator_Scalars(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, "0192f0c1-7d8e-7abc-8def-0123456789ab", FieldAnalysisID))
	assert.ErrorIs(t, v.Validate(ctx, "", FieldAnalysisID), ErrInvalidAnalysisID)
	assert.ErrorIs(t, v.Validate(ctx, strings.Repeat("a", 65), FieldAnalysisID), ErrInvalidAnalysisID)

	assert.NoError(t, v.Validate(ctx, "pending", FieldCloudStatus))
	assert.NoError(t, v.Validate(ctx, models.CloudStatusFailed))
	assert.ErrorIs(t, v.Validate(ctx, models.CloudStatus("lost")), ErrInvalidCloudStatus)

	assert.NoError(t, v.Validate(ctx, models.RetentionDeleteAfter7))
	assert.ErrorIs(t, v.Validate(ctx, models.RetentionPolicy("never")), ErrInvalidField)

	assert.NoError(t, v.Validate(ctx, 5, FieldLimit))
	assert.ErrorIs(t, v.Validate(ctx, 0, FieldLimit), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.MaxListLimit+1, FieldLimit), ErrInvalidLimit)

	assert.ErrorIs(t, v.Validate(ctx, "x"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, "x", "colour"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, 5), ErrUnknownField)
}

func TestAnalysisValidator_UnsupportedType(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 3.14), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.AnalysisRecord{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.NewAnalysis)(nil)), ErrUnsupportedType)
}
