package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/migrations"
)

const (
	maxTxRetries     = 3
	txRetryBaseDelay = 50 * time.Millisecond
)

// DB is the shared connection pool of all repositories. Besides the pool it
// carries the dialect-specific statement builder and error classifier and
// the clock and id generator every write uses.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	clock              utils.Clock
	ids                utils.IDGenerator
	logger             *logger.Logger
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// newDB wraps an open pool. dialect is the database/sql driver name and
// selects the placeholder format of generated statements.
func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		clock:              utils.NewMonotonicClock(),
		ids:                utils.NewUUIDGenerator(),
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. Transactions failing with an error the dialect
// classifies as retryable are re-run with exponential backoff.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	backoff := retry.WithMaxRetries(maxTxRetries, retry.NewExponential(txRetryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withTx").Msg("retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.runTx").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.runTx").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// exec builds and executes a statement, returning the number of affected rows.
func (db *DB) exec(ctx context.Context, q queryer, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if db.errorClassificator.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// count runs a single-value COUNT query.
func (db *DB) count(ctx context.Context, q queryer, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}
