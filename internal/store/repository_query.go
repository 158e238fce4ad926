package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/models"
)

// queryRepository serves read-only listings over analysis_records.
type queryRepository struct {
	*DB
}

func NewQueryRepository(db *DB) QueryRepository {
	return &queryRepository{DB: db}
}

// List returns one page of records, newest first with id descending as
// tiebreak, and the number of records matching the filter. Page and limit
// are expected to be validated by the caller.
func (r *queryRepository) List(ctx context.Context, q models.ListQuery) (models.ListResult, error) {
	log := logger.FromContext(ctx)

	countQuery := r.builder.Select("COUNT(*)").From(analysisTable)
	pageQuery := r.builder.Select(analysisColumns...).
		From(analysisTable).
		OrderBy("analysis_date DESC", "id DESC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset()))
	if q.RiskLevel != nil {
		countQuery = countQuery.Where(sq.Eq{"risk_level": *q.RiskLevel})
		pageQuery = pageQuery.Where(sq.Eq{"risk_level": *q.RiskLevel})
	}

	result := models.ListResult{Page: q.Page, Limit: q.Limit}
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		total, err := r.count(ctx, tx, countQuery)
		if err != nil {
			return err
		}

		query, args, err := pageQuery.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		records, err := scanAnalyses(ctx, rows)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		result.Total = total
		result.Records = records
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "queryRepository.List").
			Int("page", q.Page).
			Int("limit", q.Limit).
			Msg("failed to list analysis records")
		return models.ListResult{}, err
	}

	return result, nil
}

// ListByStatus returns up to limit records in the given cloud status,
// newest first.
func (r *queryRepository) ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(analysisColumns...).
		From(analysisTable).
		Where(sq.Eq{"cloud_analysis_status": status}).
		OrderBy("analysis_date DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queryRepository.ListByStatus").
			Str("status", string(status)).
			Msg("failed to execute query for records by status")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanAnalyses(ctx, rows)
	if err != nil {
		log.Err(err).Str("func", "queryRepository.ListByStatus").Msg("failed to scan records by status")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Stats counts all records and breaks them down by risk level, cloud status
// and capture method. Values without records are absent from the maps.
func (r *queryRepository) Stats(ctx context.Context) (models.Stats, error) {
	log := logger.FromContext(ctx)

	stats := models.Stats{
		ByRiskLevel:     map[models.RiskLevel]int{},
		ByCloudStatus:   map[models.CloudStatus]int{},
		ByCaptureMethod: map[models.CaptureMethod]int{},
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		total, err := r.count(ctx, tx, r.builder.Select("COUNT(*)").From(analysisTable))
		if err != nil {
			return err
		}
		stats.Total = total

		return r.groupCounts(ctx, tx, []breakdown{
			{"risk_level", func(k string, n int) { stats.ByRiskLevel[models.RiskLevel(k)] = n }},
			{"cloud_analysis_status", func(k string, n int) { stats.ByCloudStatus[models.CloudStatus(k)] = n }},
			{"capture_method", func(k string, n int) { stats.ByCaptureMethod[models.CaptureMethod(k)] = n }},
		})
	})
	if err != nil {
		log.Err(err).Str("func", "queryRepository.Stats").Msg("failed to collect statistics")
		return models.Stats{}, err
	}

	return stats, nil
}

// breakdown is one GROUP BY column of Stats and the sink for its counts.
type breakdown struct {
	column string
	put    func(key string, count int)
}

func (r *queryRepository) groupCounts(ctx context.Context, q queryer, breakdowns []breakdown) error {
	for _, b := range breakdowns {
		query, args, err := r.builder.Select(b.column, "COUNT(*)").
			From(analysisTable).
			GroupBy(b.column).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for rows.Next() {
			var (
				key   string
				count int
			)
			if err = rows.Scan(&key, &count); err != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			b.put(key, count)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}

	return nil
}
