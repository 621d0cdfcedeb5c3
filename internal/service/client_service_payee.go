// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/internal/validators"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type payeeService struct {
	payees    store.PayeeRepository
	knowledge store.KnowledgeRepository
	adapter   adapter.BudgetAdapter
	validator validators.Validator

	budgetID  string
	deltaSync bool

	logger *logger.Logger
}

func NewPayeeService(
	payees store.PayeeRepository,
	knowledge store.KnowledgeRepository,
	budgetAdapter adapter.BudgetAdapter,
	budgetID string,
	deltaSync bool,
	logger *logger.Logger,
) PayeeService {
	return &payeeService{
		payees:    payees,
		knowledge: knowledge,
		adapter:   budgetAdapter,
		validator: validators.NewRecordValidator(),
		budgetID:  budgetID,
		deltaSync: deltaSync,
		logger:    logger,
	}
}

func (s *payeeService) Refresh(ctx context.Context, full bool) (models.SyncResult, error) {
	startedAt := time.Now()

	lastKnowledge, err := lastKnowledgeFor(ctx, s.knowledge, models.KnowledgePayees, full || !s.deltaSync)
	if err != nil {
		return models.SyncResult{}, err
	}
	delta := lastKnowledge > 0

	data, err := s.adapter.GetPayees(ctx, s.budgetID, lastKnowledge)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("fetch payees: %w", mapAdapterError(err))
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: payees: %w", ErrInvalidAPIData, err)
	}

	var (
		ids       []string
		knowledge int64
	)
	if delta {
		ids, knowledge, err = s.payees.MergePayees(ctx, data)
	} else {
		ids, knowledge, err = s.payees.ReplacePayees(ctx, data)
	}
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("store payees: %w", err)
	}

	result := newSyncResult(ctx, models.KnowledgePayees, len(ids), knowledge, delta, startedAt)
	s.logger.Info().
		Str("func", "payeeService.Refresh").
		Str("run_id", result.RunID).
		Int("count", result.Count).
		Int64("server_knowledge", result.ServerKnowledge).
		Bool("delta", result.Delta).
		Msg("payees refreshed")

	return result, nil
}

func (s *payeeService) List(ctx context.Context) ([]models.Payee, int64, error) {
	return s.payees.GetPayees(ctx)
}

func (s *payeeService) Search(ctx context.Context, fragment string) ([]models.Payee, error) {
	return s.payees.FindPayeesByName(ctx, fragment)
}

// lastKnowledgeFor returns the stored knowledge of key to request a delta
// with, or 0 for a full fetch. A never filled cache always gets a full fetch.
func lastKnowledgeFor(ctx context.Context, repo store.KnowledgeRepository, key models.KnowledgeKey, full bool) (int64, error) {
	if full {
		return 0, nil
	}

	knowledge, err := repo.GetKnowledge(ctx, key)
	if errors.Is(err, store.ErrServerKnowledgeNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s knowledge: %w", key, err)
	}

	return knowledge, nil
}

func newSyncResult(ctx context.Context, entity models.KnowledgeKey, count int, knowledge int64, delta bool, startedAt time.Time) models.SyncResult {
	runID, _ := utils.GetRunIDFromContext(ctx)
	return models.SyncResult{
		RunID:           runID,
		Entity:          entity,
		Count:           count,
		ServerKnowledge: knowledge,
		Delta:           delta,
		StartedAt:       startedAt,
		Duration:        time.Since(startedAt),
	}
}
