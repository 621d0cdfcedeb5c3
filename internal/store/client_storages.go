package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	PayeeRepository       PayeeRepository
	TransactionRepository TransactionRepository
	KnowledgeRepository   KnowledgeRepository
	SettingsRepository    SettingsRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection selected by cfg.DB.DSN: a PostgreSQL URL or a SQLite
//     file path, creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Str("dialect", string(db.Dialect())).Msg("cache is ready")

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires the repositories to an already migrated db.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		PayeeRepository:       NewPayeeRepository(db, logger),
		TransactionRepository: NewTransactionRepository(db, logger),
		KnowledgeRepository:   NewKnowledgeRepository(db, logger),
		SettingsRepository:    NewSettingsRepository(db, logger),
		db:                    db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
