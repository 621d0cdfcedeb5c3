package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/migrations"
	"github.com/sethvargo/go-retry"
)

// Dialect names the SQL backend of a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

const (
	defaultMaxRetries = 2
	defaultRetryBase  = 50 * time.Millisecond
)

// DB wraps a *sql.DB with the dialect-specific query builder, the error
// classifier deciding which failures are retried and the retry policy.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries uint64
	retryBase  time.Duration
}

// NewDB wraps an open connection. It is used by the connect helpers and by
// tests that provide their own *sql.DB.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:         conn,
		dialect:    dialect,
		logger:     log,
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBase,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Open connects to the cache described by cfg. PostgreSQL URLs select the pgx
// driver; anything else is treated as a SQLite file path.
func Open(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	dsn = strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect returns the SQL backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.Dialect()))
}

// withTx runs fn inside a transaction and commits it. Failures the
// classifier reports as [Retryable] restart the whole transaction with
// exponential backoff; everything else is returned as is. fn must not keep
// state between attempts.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)
	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(db.retryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := db.runTx(ctx, funcName, fn)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().
				Err(err).
				Str("func", funcName).
				Int("attempt", attempt).
				Msg("transient database error, retrying transaction")
			return retry.RetryableError(err)
		}

		return err
	})
}

func (db *DB) runTx(ctx context.Context, funcName string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
