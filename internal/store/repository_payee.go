package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

// payeeRepository is the SQL implementation of [PayeeRepository]. Writes run
// in a single retried transaction via [DB.withTx].
type payeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewPayeeRepository constructs a [PayeeRepository] backed by db.
func NewPayeeRepository(db *DB, logger *logger.Logger) PayeeRepository {
	return &payeeRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplacePayees clears the payee table, bulk inserts data.Payees and replaces
// the payee knowledge record, all in one transaction. Any failure rolls the
// transaction back and leaves the previous cache intact.
func (p *payeeRepository) ReplacePayees(ctx context.Context, data models.PayeesData) ([]string, int64, error) {
	log := logger.FromContext(ctx)

	var ids []string
	err := p.withTx(ctx, "payeeRepository.ReplacePayees", func(ctx context.Context, tx *sql.Tx) error {
		query, args, err := buildDeleteAllQuery(p.builder, payeesTable)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "payeeRepository.ReplacePayees").Msg("failed to clear payees")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		ids, err = p.insertPayees(ctx, tx, data.Payees, false)
		if err != nil {
			return err
		}

		return replaceKnowledge(ctx, tx, p.builder, models.KnowledgePayees, data.ServerKnowledge)
	})
	if err != nil {
		return nil, 0, err
	}

	log.Debug().
		Str("func", "payeeRepository.ReplacePayees").
		Int("count", len(ids)).
		Int64("server_knowledge", data.ServerKnowledge).
		Msg("payees replaced")

	return ids, data.ServerKnowledge, nil
}

// MergePayees upserts data.Payees and replaces the payee knowledge record in
// one transaction.
func (p *payeeRepository) MergePayees(ctx context.Context, data models.PayeesData) ([]string, int64, error) {
	var ids []string
	err := p.withTx(ctx, "payeeRepository.MergePayees", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		ids, err = p.insertPayees(ctx, tx, data.Payees, true)
		if err != nil {
			return err
		}

		return upsertKnowledge(ctx, tx, p.builder, models.KnowledgePayees, data.ServerKnowledge)
	})
	if err != nil {
		return nil, 0, err
	}

	return ids, data.ServerKnowledge, nil
}

func (p *payeeRepository) insertPayees(ctx context.Context, tx *sql.Tx, payees []models.Payee, upsert bool) ([]string, error) {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(payees))
	for _, bounds := range chunks(len(payees), chunkSize(len(payeeColumns))) {
		batch := payees[bounds[0]:bounds[1]]

		query, args, err := buildInsertPayeesQuery(p.builder, batch, upsert)
		if err != nil {
			return nil, err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "payeeRepository.insertPayees").
				Int("batch_start", bounds[0]).
				Int("batch_size", len(batch)).
				Msg("failed to insert payees")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, payee := range batch {
			ids = append(ids, payee.ID)
		}
	}

	return ids, nil
}

// GetPayees reads the payee knowledge and every cached payee in one
// transaction.
func (p *payeeRepository) GetPayees(ctx context.Context) ([]models.Payee, int64, error) {
	var (
		payees    []models.Payee
		knowledge int64
	)

	err := p.withTx(ctx, "payeeRepository.GetPayees", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		knowledge, err = selectKnowledge(ctx, tx, p.builder, models.KnowledgePayees)
		if err != nil {
			return err
		}

		payees, err = p.selectPayees(ctx, tx, "")
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return payees, knowledge, nil
}

// FindPayeesByName returns the cached payees whose name contains fragment.
func (p *payeeRepository) FindPayeesByName(ctx context.Context, fragment string) ([]models.Payee, error) {
	var payees []models.Payee

	err := p.withTx(ctx, "payeeRepository.FindPayeesByName", func(ctx context.Context, tx *sql.Tx) error {
		var err error
		payees, err = p.selectPayees(ctx, tx, fragment)
		return err
	})
	if err != nil {
		return nil, err
	}

	return payees, nil
}

func (p *payeeRepository) selectPayees(ctx context.Context, tx *sql.Tx, fragment string) ([]models.Payee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPayeesQuery(p.builder, fragment)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "payeeRepository.selectPayees").Msg("failed to query payees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payees := make([]models.Payee, 0, 64)
	for rows.Next() {
		var payee models.Payee
		if scanErr := rows.Scan(&payee.ID, &payee.Name, &payee.TransferAccountID, &payee.Deleted); scanErr != nil {
			log.Err(scanErr).Str("func", "payeeRepository.selectPayees").Msg("failed to scan payee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		payees = append(payees, payee)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "payeeRepository.selectPayees").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return payees, nil
}
