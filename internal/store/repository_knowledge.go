package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type knowledgeRepository struct {
	*DB
	logger *logger.Logger
}

// NewKnowledgeRepository constructs a [KnowledgeRepository] backed by db.
func NewKnowledgeRepository(db *DB, logger *logger.Logger) KnowledgeRepository {
	return &knowledgeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetKnowledge returns the stored server knowledge for key, or
// [ErrServerKnowledgeNotFound] when the entity was never synced.
func (k *knowledgeRepository) GetKnowledge(ctx context.Context, key models.KnowledgeKey) (int64, error) {
	var value int64
	err := k.withTx(ctx, "knowledgeRepository.GetKnowledge", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		value, err = selectKnowledge(ctx, tx, k.builder, key)
		return err
	})
	if err != nil {
		return 0, err
	}

	return value, nil
}

func replaceKnowledge(ctx context.Context, tx *sql.Tx, b sq.StatementBuilderType, key models.KnowledgeKey, value int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteKnowledgeQuery(b, key)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "replaceKnowledge").Str("key", key.String()).Msg("failed to clear server knowledge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildInsertKnowledgeQuery(b, key, value)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "replaceKnowledge").Str("key", key.String()).Msg("failed to insert server knowledge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func upsertKnowledge(ctx context.Context, tx *sql.Tx, b sq.StatementBuilderType, key models.KnowledgeKey, value int64) error {
	query, args, err := buildUpsertKnowledgeQuery(b, key, value)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "upsertKnowledge").Str("key", key.String()).Msg("failed to upsert server knowledge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func selectKnowledge(ctx context.Context, tx *sql.Tx, b sq.StatementBuilderType, key models.KnowledgeKey) (int64, error) {
	query, args, err := buildSelectKnowledgeQuery(b, key)
	if err != nil {
		return 0, err
	}

	var value int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrServerKnowledgeNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "selectKnowledge").Str("key", key.String()).Msg("failed to read server knowledge")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}
