// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

// analysisRepository is the SQL implementation of [AnalysisRepository]
// over the analysis_records table.
//
// Every mutation runs in a transaction that updates the row, bumps
// updated_at from the monotonic clock and reads the row back, so callers
// always receive the state they produced.
type analysisRepository struct {
	*DB
}

// NewAnalysisRepository constructs an [AnalysisRepository] backed by db.
func NewAnalysisRepository(db *DB) AnalysisRepository {
	return &analysisRepository{DB: db}
}

// Create inserts a new record with status pending and the defaults for
// omitted optional fields, and appends the image_capture/completed audit
// entry in the same transaction.
func (r *analysisRepository) Create(ctx context.Context, in models.NewAnalysis) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	now := r.clock.Now()
	rec := newAnalysisRecord(r.ids.Generate(), in, now)

	redFlags, err := encodeStrings(rec.RedFlagSymptoms)
	if err != nil {
		return models.AnalysisRecord{}, err
	}
	conditions, err := encodeStrings(rec.SkinConditions)
	if err != nil {
		return models.AnalysisRecord{}, err
	}
	recommendations, err := encodeStrings(rec.Recommendations)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	insert := r.builder.Insert(analysisTable).
		Columns(
			"id", "image_data", "image_path", "image_format", "symptoms", "red_flag_symptoms",
			"risk_level", "skin_conditions", "recommendations", "ai_response", "confidence",
			"cloud_analysis_status", "capture_method", "data_retention_policy", "is_encrypted",
			"analysis_date", "updated_at", "notes",
		).
		Values(
			rec.ID, rec.ImageData, nullableString(rec.ImagePath), rec.ImageFormat, rec.Symptoms, redFlags,
			rec.RiskLevel, conditions, recommendations, rec.AIResponse, *rec.Confidence,
			rec.CloudAnalysisStatus, rec.CaptureMethod, rec.DataRetentionPolicy, rec.IsEncrypted,
			rec.AnalysisDate, rec.UpdatedAt, nullableString(rec.Notes),
		)

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.exec(ctx, tx, insert); err != nil {
			return err
		}
		_, err := r.appendLog(ctx, tx, rec.ID, models.StageImageCapture, models.LogCompleted, nil, now)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "analysisRepository.Create").
			Str("analysis_id", rec.ID).
			Msg("failed to create analysis record")
		return models.AnalysisRecord{}, err
	}

	log.Debug().Str("func", "analysisRepository.Create").Str("analysis_id", rec.ID).Msg("analysis record created")
	return rec, nil
}

// GetByID returns the record with the given id or [ErrAnalysisNotFound].
func (r *analysisRepository) GetByID(ctx context.Context, id string) (models.AnalysisRecord, error) {
	rec, err := r.getByID(ctx, r.DB.DB, id)
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, ErrAnalysisNotFound) {
			log.Warn().Str("func", "analysisRepository.GetByID").Str("analysis_id", id).Msg("analysis record not found")
		} else {
			log.Err(err).Str("func", "analysisRepository.GetByID").Str("analysis_id", id).Msg("failed to get analysis record")
		}
		return models.AnalysisRecord{}, err
	}

	return rec, nil
}

// UpdateSymptoms replaces the free-text symptoms and, when redFlags is not
// nil, the red-flag tags.
func (r *analysisRepository) UpdateSymptoms(ctx context.Context, id string, symptoms string, redFlags *[]string) (models.AnalysisRecord, error) {
	set := map[string]any{"symptoms": symptoms}
	if redFlags != nil {
		encoded, err := encodeStrings(*redFlags)
		if err != nil {
			return models.AnalysisRecord{}, err
		}
		set["red_flag_symptoms"] = encoded
	}

	return r.update(ctx, "analysisRepository.UpdateSymptoms", id, set)
}

// UpdateLocalInferenceResult stores the local model output and confidence
// and stamps processing_started_at. The cloud status is not touched. A
// local_inference/completed audit entry is appended in the same transaction.
func (r *analysisRepository) UpdateLocalInferenceResult(ctx context.Context, id string, result models.LocalInferenceResult, confidence float64) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	encoded, err := encodeLocalResult(&result)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	var rec models.AnalysisRecord
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		now := r.clock.Now()
		if err := r.updateRow(ctx, tx, id, map[string]any{
			"local_ai_results":      encoded,
			"confidence":            confidence,
			"processing_started_at": now,
			"updated_at":            now,
		}); err != nil {
			return err
		}
		if _, err := r.appendLog(ctx, tx, id, models.StageLocalInference, models.LogCompleted, nil, now); err != nil {
			return err
		}

		var getErr error
		rec, getErr = r.getByID(ctx, tx, id)
		return getErr
	})
	if err != nil {
		r.logWriteError(log, err, "analysisRepository.UpdateLocalInferenceResult", id)
		return models.AnalysisRecord{}, err
	}

	return rec, nil
}

func (r *analysisRepository) UpdateNotes(ctx context.Context, id string, notes string) (models.AnalysisRecord, error) {
	return r.update(ctx, "analysisRepository.UpdateNotes", id, map[string]any{"notes": notes})
}

func (r *analysisRepository) SetRetentionPolicy(ctx context.Context, id string, policy models.RetentionPolicy) (models.AnalysisRecord, error) {
	return r.update(ctx, "analysisRepository.SetRetentionPolicy", id, map[string]any{"data_retention_policy": policy})
}

// MarkEncrypted sets the advisory encryption flag. Marking an already
// encrypted record changes nothing, updated_at included.
func (r *analysisRepository) MarkEncrypted(ctx context.Context, id string) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.AnalysisRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		stmt := r.builder.Update(analysisTable).
			Set("is_encrypted", true).
			Set("updated_at", r.clock.Now()).
			Where(sq.Eq{"id": id, "is_encrypted": false})
		if _, err := r.exec(ctx, tx, stmt); err != nil {
			return err
		}

		var getErr error
		rec, getErr = r.getByID(ctx, tx, id)
		return getErr
	})
	if err != nil {
		r.logWriteError(log, err, "analysisRepository.MarkEncrypted", id)
		return models.AnalysisRecord{}, err
	}

	return rec, nil
}

// SetStatus moves the record to status and appends the matching
// cloud_analysis audit entry in one transaction:
//   - processing: status only, entry "started";
//   - completed: the four synthesis outputs and processing_completed_at,
//     entry "completed"; payload must carry all four outputs;
//   - failed: status only, entry "failed" with the optional payload reason.
//
// Any other target fails with [ErrUnsupportedStatus].
func (r *analysisRepository) SetStatus(ctx context.Context, id string, status models.CloudStatus, payload *models.StatusPayload) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	set := map[string]any{"cloud_analysis_status": status}
	var logStatus models.LogStatus
	var details *string

	switch status {
	case models.CloudStatusProcessing:
		logStatus = models.LogStarted
	case models.CloudStatusCompleted:
		if !payload.IsComplete() {
			return models.AnalysisRecord{}, ErrIncompleteStatusPayload
		}
		conditions, err := encodeStrings(payload.SkinConditions)
		if err != nil {
			return models.AnalysisRecord{}, err
		}
		recommendations, err := encodeStrings(payload.Recommendations)
		if err != nil {
			return models.AnalysisRecord{}, err
		}
		set["ai_response"] = *payload.AIResponse
		set["skin_conditions"] = conditions
		set["recommendations"] = recommendations
		set["risk_level"] = *payload.RiskLevel
		logStatus = models.LogCompleted
	case models.CloudStatusFailed:
		logStatus = models.LogFailed
		if payload != nil {
			details = payload.Reason
		}
	default:
		return models.AnalysisRecord{}, fmt.Errorf("%w: %q", ErrUnsupportedStatus, status)
	}

	var rec models.AnalysisRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		now := r.clock.Now()
		set["updated_at"] = now
		if status == models.CloudStatusCompleted {
			set["processing_completed_at"] = now
		}

		if err := r.updateRow(ctx, tx, id, set); err != nil {
			return err
		}
		if _, err := r.appendLog(ctx, tx, id, models.StageCloudAnalysis, logStatus, details, now); err != nil {
			return err
		}

		var getErr error
		rec, getErr = r.getByID(ctx, tx, id)
		return getErr
	})
	if err != nil {
		r.logWriteError(log, err, "analysisRepository.SetStatus", id)
		return models.AnalysisRecord{}, err
	}

	log.Debug().
		Str("func", "analysisRepository.SetStatus").
		Str("analysis_id", id).
		Str("status", string(status)).
		Msg("cloud analysis status changed")
	return rec, nil
}

// Delete removes the record row and reports whether it existed. Audit and
// deletion ledger rows are kept.
func (r *analysisRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	affected, err := r.exec(ctx, r.DB.DB, r.builder.Delete(analysisTable).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).Str("func", "analysisRepository.Delete").Str("analysis_id", id).Msg("failed to delete analysis record")
		return false, err
	}

	return affected > 0, nil
}

// update applies set plus a fresh updated_at to the row and returns the
// updated record.
func (r *analysisRepository) update(ctx context.Context, funcName, id string, set map[string]any) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.AnalysisRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		set["updated_at"] = r.clock.Now()
		if err := r.updateRow(ctx, tx, id, set); err != nil {
			return err
		}

		var getErr error
		rec, getErr = r.getByID(ctx, tx, id)
		return getErr
	})
	if err != nil {
		r.logWriteError(log, err, funcName, id)
		return models.AnalysisRecord{}, err
	}

	return rec, nil
}

// updateRow returns [ErrAnalysisNotFound] when no row has the id.
func (r *analysisRepository) updateRow(ctx context.Context, q queryer, id string, set map[string]any) error {
	affected, err := r.exec(ctx, q, r.builder.Update(analysisTable).SetMap(set).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}

func (r *analysisRepository) getByID(ctx context.Context, q queryer, id string) (models.AnalysisRecord, error) {
	query, args, err := r.builder.Select(analysisColumns...).
		From(analysisTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanAnalysis(ctx, q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnalysisRecord{}, ErrAnalysisNotFound
	}
	if err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *analysisRepository) logWriteError(log *logger.Logger, err error, funcName, id string) {
	if errors.Is(err, ErrAnalysisNotFound) {
		log.Warn().Str("func", funcName).Str("analysis_id", id).Msg("analysis record not found")
		return
	}
	log.Err(err).Str("func", funcName).Str("analysis_id", id).Msg("failed to update analysis record")
}

// newAnalysisRecord builds the initial state of a record from the create
// input.
func newAnalysisRecord(id string, in models.NewAnalysis, now time.Time) models.AnalysisRecord {
	rec := models.AnalysisRecord{
		ID:                  id,
		ImageData:           deref(in.ImageData),
		ImagePath:           in.ImagePath,
		ImageFormat:         in.ImageFormat,
		Symptoms:            deref(in.Symptoms),
		RedFlagSymptoms:     nonNil(in.RedFlagSymptoms),
		SkinConditions:      nonNil(in.SkinConditions),
		Recommendations:     nonNil(in.Recommendations),
		AIResponse:          deref(in.AIResponse),
		Confidence:          in.Confidence,
		CloudAnalysisStatus: models.CloudStatusPending,
		CaptureMethod:       in.CaptureMethod,
		DataRetentionPolicy: in.RetentionPolicy,
		IsEncrypted:         in.IsEncrypted,
		AnalysisDate:        now,
		UpdatedAt:           now,
		Notes:               in.Notes,
	}
	if in.RiskLevel != nil {
		rec.RiskLevel = *in.RiskLevel
	}
	if rec.ImageFormat == "" {
		rec.ImageFormat = models.DefaultImageFormat
	}
	if rec.CaptureMethod == "" {
		rec.CaptureMethod = models.DefaultCaptureMethod
	}
	if rec.DataRetentionPolicy == "" {
		rec.DataRetentionPolicy = models.DefaultRetentionPolicy
	}
	if rec.Confidence == nil {
		c := models.DefaultConfidence
		rec.Confidence = &c
	}

	return rec
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
