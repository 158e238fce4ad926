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

type referenceSymptomRepository struct {
	*DB
}

func NewReferenceSymptomRepository(db *DB) ReferenceSymptomRepository {
	return &referenceSymptomRepository{DB: db}
}

// SeedIfEmpty inserts catalog only when the table has no rows at all and
// reports how many rows were inserted. It never merges into an existing
// catalog.
func (r *referenceSymptomRepository) SeedIfEmpty(ctx context.Context, catalog []models.ReferenceSymptom) (int, error) {
	log := logger.FromContext(ctx)

	inserted := 0
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		inserted = 0

		existing, err := r.count(ctx, tx, r.builder.Select("COUNT(*)").From(referenceSymptomTable))
		if err != nil {
			return err
		}
		if existing > 0 || len(catalog) == 0 {
			return nil
		}

		insert := r.builder.Insert(referenceSymptomTable).Columns(referenceSymptomColumns...)
		for _, symptom := range catalog {
			id := symptom.ID
			if id == "" {
				id = r.ids.Generate()
			}
			insert = insert.Values(id, symptom.Text, symptom.Category, symptom.Priority)
		}

		affected, err := r.exec(ctx, tx, insert)
		inserted = int(affected)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "referenceSymptomRepository.SeedIfEmpty").Msg("failed to seed reference symptoms")
		return 0, err
	}

	log.Debug().Str("func", "referenceSymptomRepository.SeedIfEmpty").Int("inserted", inserted).Msg("reference symptoms seeded")
	return inserted, nil
}

// List returns the whole catalog by priority, then text.
func (r *referenceSymptomRepository) List(ctx context.Context) ([]models.ReferenceSymptom, error) {
	return r.list(ctx, "referenceSymptomRepository.List", nil)
}

// ListByCategory returns one category by priority, with text as tiebreak.
func (r *referenceSymptomRepository) ListByCategory(ctx context.Context, category string) ([]models.ReferenceSymptom, error) {
	return r.list(ctx, "referenceSymptomRepository.ListByCategory", sq.Eq{"category": category})
}

// AddCustom inserts a user-supplied suggestion. A duplicate text fails with
// [ErrConflict].
func (r *referenceSymptomRepository) AddCustom(ctx context.Context, text, category string, priority int) (models.ReferenceSymptom, error) {
	log := logger.FromContext(ctx)

	symptom := models.ReferenceSymptom{
		ID:       r.ids.Generate(),
		Text:     text,
		Category: category,
		Priority: priority,
	}

	_, err := r.exec(ctx, r.DB.DB, r.builder.Insert(referenceSymptomTable).
		Columns(referenceSymptomColumns...).
		Values(symptom.ID, symptom.Text, symptom.Category, symptom.Priority))
	if err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn().Str("func", "referenceSymptomRepository.AddCustom").Str("text", text).Msg("reference symptom already exists")
		} else {
			log.Err(err).Str("func", "referenceSymptomRepository.AddCustom").Str("text", text).Msg("failed to add reference symptom")
		}
		return models.ReferenceSymptom{}, err
	}

	return symptom, nil
}

func (r *referenceSymptomRepository) list(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.ReferenceSymptom, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.Select(referenceSymptomColumns...).
		From(referenceSymptomTable).
		OrderBy("priority ASC", "text ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for reference symptoms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	symptoms := make([]models.ReferenceSymptom, 0, 16)
	for rows.Next() {
		var s models.ReferenceSymptom
		if err = rows.Scan(&s.ID, &s.Text, &s.Category, &s.Priority); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan reference symptom row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		symptoms = append(symptoms, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return symptoms, nil
}
