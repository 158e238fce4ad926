package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
)

// Storages groups all repositories of the record store over one connection
// pool so they can be passed to the service layer as a single value.
type Storages struct {
	db *DB

	AnalysisRepository         AnalysisRepository
	ProcessingLogRepository    ProcessingLogRepository
	DeletionRepository         DeletionRepository
	ReferenceSymptomRepository ReferenceSymptomRepository
	QueryRepository            QueryRepository
}

// NewStorages opens the database selected by cfg.DB.Driver and wires every
// repository to it. The schema is not touched; call [Storages.Initialize]
// once before serving requests.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB wires the repositories to an already opened DB.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		db:                         db,
		AnalysisRepository:         NewAnalysisRepository(db),
		ProcessingLogRepository:    NewProcessingLogRepository(db),
		DeletionRepository:         NewDeletionRepository(db),
		ReferenceSymptomRepository: NewReferenceSymptomRepository(db),
		QueryRepository:            NewQueryRepository(db),
	}
}

// Initialize applies pending migrations and seeds the reference symptom
// catalog if it is empty. It is idempotent.
func (s *Storages) Initialize(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.db.Migrate(); err != nil {
		log.Err(err).Str("func", "*Storages.Initialize").Msg("migration failed")
		return fmt.Errorf("migration failed: %w", err)
	}

	seeded, err := s.ReferenceSymptomRepository.SeedIfEmpty(ctx, DefaultReferenceSymptoms)
	if err != nil {
		return fmt.Errorf("seeding reference symptoms failed: %w", err)
	}
	log.Info().Int("seeded", seeded).Msg("storage initialized")

	return nil
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
