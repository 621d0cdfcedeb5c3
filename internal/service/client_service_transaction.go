package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/internal/validators"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type transactionService struct {
	transactions store.TransactionRepository
	knowledge    store.KnowledgeRepository
	adapter      adapter.BudgetAdapter
	validator    validators.Validator

	budgetID  string
	deltaSync bool

	logger *logger.Logger
}

func NewTransactionService(
	transactions store.TransactionRepository,
	knowledge store.KnowledgeRepository,
	budgetAdapter adapter.BudgetAdapter,
	budgetID string,
	deltaSync bool,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		transactions: transactions,
		knowledge:    knowledge,
		adapter:      budgetAdapter,
		validator:    validators.NewRecordValidator(),
		budgetID:     budgetID,
		deltaSync:    deltaSync,
		logger:       logger,
	}
}

func (s *transactionService) Refresh(ctx context.Context, full bool) (models.SyncResult, error) {
	startedAt := time.Now()

	lastKnowledge, err := lastKnowledgeFor(ctx, s.knowledge, models.KnowledgeTransactions, full || !s.deltaSync)
	if err != nil {
		return models.SyncResult{}, err
	}
	delta := lastKnowledge > 0

	data, err := s.adapter.GetTransactions(ctx, s.budgetID, lastKnowledge)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("fetch transactions: %w", mapAdapterError(err))
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: transactions: %w", ErrInvalidAPIData, err)
	}

	var (
		ids       []string
		knowledge int64
	)
	if delta {
		ids, knowledge, err = s.transactions.MergeTransactions(ctx, data)
	} else {
		ids, knowledge, err = s.transactions.ReplaceTransactions(ctx, data)
	}
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("store transactions: %w", err)
	}

	result := newSyncResult(ctx, models.KnowledgeTransactions, len(ids), knowledge, delta, startedAt)
	s.logger.Info().
		Str("func", "transactionService.Refresh").
		Str("run_id", result.RunID).
		Int("count", result.Count).
		Int64("server_knowledge", result.ServerKnowledge).
		Bool("delta", result.Delta).
		Msg("transactions refreshed")

	return result, nil
}

func (s *transactionService) List(ctx context.Context) ([]models.Transaction, int64, error) {
	return s.transactions.GetTransactions(ctx)
}
