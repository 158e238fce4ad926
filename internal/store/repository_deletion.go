package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

// deletionRepository keeps the deletion-request ledger. Requests record
// intent only; purging the record itself is a separate Delete call.
type deletionRepository struct {
	*DB
}

func NewDeletionRepository(db *DB) DeletionRepository {
	return &deletionRepository{DB: db}
}

// RequestDeletion appends a pending request for the analysis. The analysis
// is not required to exist.
func (r *deletionRepository) RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	log := logger.FromContext(ctx)

	rec := models.DeletionRecord{
		ID:          r.ids.Generate(),
		AnalysisID:  analysisID,
		RequestedAt: r.clock.Now(),
		Status:      models.DeletionPending,
	}

	_, err := r.exec(ctx, r.DB.DB, r.builder.Insert(deletionTable).
		Columns("id", "analysis_id", "requested_at", "status").
		Values(rec.ID, rec.AnalysisID, rec.RequestedAt, rec.Status))
	if err != nil {
		log.Err(err).
			Str("func", "deletionRepository.RequestDeletion").
			Str("analysis_id", analysisID).
			Msg("failed to save deletion request")
		return models.DeletionRecord{}, err
	}

	return rec, nil
}

// CompleteDeletion marks the most recent pending request of the analysis as
// completed. Returns [ErrDeletionRequestNotFound] when nothing is pending.
func (r *deletionRepository) CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.DeletionRecord
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.builder.Select(deletionColumns...).
			From(deletionTable).
			Where(sq.Eq{"analysis_id": analysisID, "status": models.DeletionPending}).
			OrderBy("requested_at DESC", "id DESC").
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var completedAt sql.NullTime
		err = tx.QueryRowContext(ctx, query, args...).
			Scan(&rec.ID, &rec.AnalysisID, &rec.RequestedAt, &completedAt, &rec.Status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDeletionRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		now := r.clock.Now()
		_, err = r.exec(ctx, tx, r.builder.Update(deletionTable).
			Set("status", models.DeletionCompleted).
			Set("completed_at", now).
			Where(sq.Eq{"id": rec.ID}))
		if err != nil {
			return err
		}

		rec.RequestedAt = rec.RequestedAt.UTC()
		rec.Status = models.DeletionCompleted
		rec.CompletedAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDeletionRequestNotFound) {
			log.Warn().Str("func", "deletionRepository.CompleteDeletion").Str("analysis_id", analysisID).Msg("no pending deletion request")
		} else {
			log.Err(err).Str("func", "deletionRepository.CompleteDeletion").Str("analysis_id", analysisID).Msg("failed to complete deletion request")
		}
		return models.DeletionRecord{}, err
	}

	return rec, nil
}

// ListExpiring returns records under a timed retention policy whose
// analysis date is older than that policy's window, oldest first.
func (r *deletionRepository) ListExpiring(ctx context.Context) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	now := r.clock.Now()
	expired := sq.Or{}
	for _, policy := range models.TimedRetentionPolicies {
		window, _ := policy.Window()
		expired = append(expired, sq.And{
			sq.Eq{"data_retention_policy": policy},
			sq.Lt{"analysis_date": now.Add(-window)},
		})
	}

	query, args, err := r.builder.Select(analysisColumns...).
		From(analysisTable).
		Where(expired).
		OrderBy("analysis_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "deletionRepository.ListExpiring").Msg("failed to execute query for expiring records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanAnalyses(ctx, rows)
	if err != nil {
		log.Err(err).Str("func", "deletionRepository.ListExpiring").Msg("failed to scan expiring records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
