package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type budgetService struct {
	adapter adapter.BudgetAdapter
	logger  *logger.Logger
}

func NewBudgetService(budgetAdapter adapter.BudgetAdapter, logger *logger.Logger) BudgetService {
	return &budgetService{adapter: budgetAdapter, logger: logger}
}

func (s *budgetService) List(ctx context.Context) ([]models.Budget, error) {
	budgets, err := s.adapter.GetBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch budgets: %w", mapAdapterError(err))
	}

	s.logger.Debug().Str("func", "budgetService.List").Int("count", len(budgets)).Msg("budgets fetched")
	return budgets, nil
}
