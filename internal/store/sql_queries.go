package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-derma-records/models"
)

const (
	analysisTable         = "analysis_records"
	processingLogTable    = "processing_logs"
	deletionTable         = "deletion_records"
	referenceSymptomTable = "reference_symptoms"
)

// analysisColumns is the column order read by [scanAnalysis].
var analysisColumns = []string{
	"id",
	"image_data",
	"image_path",
	"image_format",
	"symptoms",
	"red_flag_symptoms",
	"risk_level",
	"skin_conditions",
	"recommendations",
	"ai_response",
	"local_ai_results",
	"confidence",
	"cloud_analysis_status",
	"capture_method",
	"data_retention_policy",
	"is_encrypted",
	"analysis_date",
	"updated_at",
	"processing_started_at",
	"processing_completed_at",
	"notes",
}

var processingLogColumns = []string{"id", "analysis_id", "stage", "status", "details", "created_at"}

var deletionColumns = []string{"id", "analysis_id", "requested_at", "completed_at", "status"}

var referenceSymptomColumns = []string{"id", "text", "category", "priority"}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAnalysis reads one analysis_records row selected with analysisColumns
// and decodes its structured columns.
func scanAnalysis(ctx context.Context, row rowScanner) (models.AnalysisRecord, error) {
	var (
		rec                           models.AnalysisRecord
		imagePath, localResults, note sql.NullString
		redFlags, conditions, recs    string
		confidence                    sql.NullFloat64
		startedAt, completedAt        sql.NullTime
	)

	err := row.Scan(
		&rec.ID,
		&rec.ImageData,
		&imagePath,
		&rec.ImageFormat,
		&rec.Symptoms,
		&redFlags,
		&rec.RiskLevel,
		&conditions,
		&recs,
		&rec.AIResponse,
		&localResults,
		&confidence,
		&rec.CloudAnalysisStatus,
		&rec.CaptureMethod,
		&rec.DataRetentionPolicy,
		&rec.IsEncrypted,
		&rec.AnalysisDate,
		&rec.UpdatedAt,
		&startedAt,
		&completedAt,
		&note,
	)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	rec.ImagePath = nullStringPtr(imagePath)
	rec.Notes = nullStringPtr(note)
	rec.RedFlagSymptoms = decodeStrings(ctx, redFlags, "red_flag_symptoms", rec.ID)
	rec.SkinConditions = decodeStrings(ctx, conditions, "skin_conditions", rec.ID)
	rec.Recommendations = decodeStrings(ctx, recs, "recommendations", rec.ID)
	rec.LocalAIResults = decodeLocalResult(ctx, localResults, rec.ID)
	if confidence.Valid {
		rec.Confidence = &confidence.Float64
	}
	rec.AnalysisDate = rec.AnalysisDate.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	rec.ProcessingStartedAt = nullTimePtr(startedAt)
	rec.ProcessingCompletedAt = nullTimePtr(completedAt)

	return rec, nil
}

// scanAnalyses drains rows into a slice, never returning nil on success.
func scanAnalyses(ctx context.Context, rows *sql.Rows) ([]models.AnalysisRecord, error) {
	records := make([]models.AnalysisRecord, 0, 16)
	for rows.Next() {
		rec, err := scanAnalysis(ctx, rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}

func nullableString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
