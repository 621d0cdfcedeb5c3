package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by db.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceTransactions clears the transaction table, bulk inserts
// data.Transactions and replaces the transaction knowledge in one
// transaction.
func (t *transactionRepository) ReplaceTransactions(ctx context.Context, data models.TransactionsData) ([]string, int64, error) {
	var ids []string
	err := t.withTx(ctx, "transactionRepository.ReplaceTransactions", func(ctx context.Context, tx *sql.Tx) error {
		query, args, err := buildDeleteAllQuery(t.builder, transactionsTable)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "transactionRepository.ReplaceTransactions").Msg("failed to clear transactions")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		ids, err = t.insertTransactions(ctx, tx, data.Transactions, false)
		if err != nil {
			return err
		}

		return replaceKnowledge(ctx, tx, t.builder, models.KnowledgeTransactions, data.ServerKnowledge)
	})
	if err != nil {
		return nil, 0, err
	}

	return ids, data.ServerKnowledge, nil
}

// MergeTransactions upserts data.Transactions and replaces the transaction
// knowledge in one transaction.
func (t *transactionRepository) MergeTransactions(ctx context.Context, data models.TransactionsData) ([]string, int64, error) {
	var ids []string
	err := t.withTx(ctx, "transactionRepository.MergeTransactions", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		ids, err = t.insertTransactions(ctx, tx, data.Transactions, true)
		if err != nil {
			return err
		}

		return upsertKnowledge(ctx, tx, t.builder, models.KnowledgeTransactions, data.ServerKnowledge)
	})
	if err != nil {
		return nil, 0, err
	}

	return ids, data.ServerKnowledge, nil
}

func (t *transactionRepository) insertTransactions(ctx context.Context, tx *sql.Tx, txs []models.Transaction, upsert bool) ([]string, error) {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(txs))
	for _, bounds := range chunks(len(txs), chunkSize(len(transactionColumns))) {
		batch := txs[bounds[0]:bounds[1]]

		query, args, err := buildInsertTransactionsQuery(t.builder, batch, upsert)
		if err != nil {
			return nil, err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "transactionRepository.insertTransactions").
				Int("batch_start", bounds[0]).
				Int("batch_size", len(batch)).
				Msg("failed to insert transactions")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, item := range batch {
			ids = append(ids, item.ID)
		}
	}

	return ids, nil
}

// GetTransactions reads the transaction knowledge and every cached
// transaction, newest first, in one transaction.
func (t *transactionRepository) GetTransactions(ctx context.Context) ([]models.Transaction, int64, error) {
	var (
		txs       []models.Transaction
		knowledge int64
	)

	err := t.withTx(ctx, "transactionRepository.GetTransactions", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		knowledge, err = selectKnowledge(ctx, tx, t.builder, models.KnowledgeTransactions)
		if err != nil {
			return err
		}

		txs, err = t.selectTransactions(ctx, tx)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return txs, knowledge, nil
}

func (t *transactionRepository) selectTransactions(ctx context.Context, tx *sql.Tx) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionsQuery(t.builder)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.selectTransactions").Msg("failed to query transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0, 64)
	for rows.Next() {
		var item models.Transaction

		scanErr := rows.Scan(
			&item.ID,
			&item.Date,
			&item.Amount,
			&item.Memo,
			&item.Cleared,
			&item.Approved,
			&item.AccountName,
			&item.PayeeID,
			&item.PayeeName,
			&item.CategoryName,
			&item.TransferAccountID,
			&item.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "transactionRepository.selectTransactions").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		txs = append(txs, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "transactionRepository.selectTransactions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return txs, nil
}
