package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

type processingLogRepository struct {
	*DB
}

// NewProcessingLogRepository constructs a [ProcessingLogRepository] backed by db.
func NewProcessingLogRepository(db *DB) ProcessingLogRepository {
	return &processingLogRepository{DB: db}
}

// Append writes one audit entry stamped with the current time.
func (r *processingLogRepository) Append(ctx context.Context, analysisID, stage string, status models.LogStatus, details *string) (models.ProcessingLogEntry, error) {
	entry, err := r.appendLog(ctx, r.DB.DB, analysisID, stage, status, details, r.clock.Now())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "processingLogRepository.Append").
			Str("analysis_id", analysisID).
			Str("stage", stage).
			Msg("failed to append processing log entry")
		return models.ProcessingLogEntry{}, err
	}

	return entry, nil
}

// ListFor returns every entry of the analysis ordered by time, then id.
func (r *processingLogRepository) ListFor(ctx context.Context, analysisID string) ([]models.ProcessingLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(processingLogColumns...).
		From(processingLogTable).
		Where(sq.Eq{"analysis_id": analysisID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "processingLogRepository.ListFor").
			Str("analysis_id", analysisID).
			Msg("failed to execute query for processing log")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ProcessingLogEntry, 0, 4)
	for rows.Next() {
		var (
			entry   models.ProcessingLogEntry
			details sql.NullString
		)
		if err = rows.Scan(&entry.ID, &entry.AnalysisID, &entry.Stage, &entry.Status, &details, &entry.Timestamp); err != nil {
			log.Err(err).
				Str("func", "processingLogRepository.ListFor").
				Str("analysis_id", analysisID).
				Msg("failed to scan processing log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry.Details = nullStringPtr(details)
		entry.Timestamp = entry.Timestamp.UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "processingLogRepository.ListFor").
			Str("analysis_id", analysisID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// appendLog inserts an audit entry through q, which is the pool or the
// transaction of the state change being audited.
func (db *DB) appendLog(ctx context.Context, q queryer, analysisID, stage string, status models.LogStatus, details *string, at time.Time) (models.ProcessingLogEntry, error) {
	entry := models.ProcessingLogEntry{
		ID:         db.ids.Generate(),
		AnalysisID: analysisID,
		Stage:      stage,
		Status:     status,
		Details:    details,
		Timestamp:  at,
	}

	_, err := db.exec(ctx, q, db.builder.Insert(processingLogTable).
		Columns(processingLogColumns...).
		Values(entry.ID, entry.AnalysisID, entry.Stage, entry.Status, nullableString(entry.Details), entry.Timestamp))
	if err != nil {
		return models.ProcessingLogEntry{}, err
	}

	return entry, nil
}
