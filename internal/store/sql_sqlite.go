package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
)

// sqliteDSNOptions are appended to DSNs that do not set them already: WAL
// journal, a 5s busy timeout and write locks taken at BEGIN.
var sqliteDSNOptions = []string{"_journal_mode=WAL", "_busy_timeout=5000", "_txlock=immediate"}

// NewConnectSQLite opens the SQLite database file named by cfg.DSN, creating
// it if missing. The pool is limited to one connection so writers never
// contend for the file lock.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN adds the default connection options to dsn, keeping any option
// the caller already set.
func sqliteDSN(dsn string) string {
	var missing []string
	for _, opt := range sqliteDSNOptions {
		key := opt[:strings.Index(opt, "=")+1]
		if !strings.Contains(dsn, key) {
			missing = append(missing, opt)
		}
	}
	if len(missing) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(missing, "&")
}
