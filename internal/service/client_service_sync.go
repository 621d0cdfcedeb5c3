package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type clientSyncService struct {
	payees       PayeeService
	transactions TransactionService
	newRunID     func() string

	group singleflight.Group
	// mu keeps a full and a delta run from overlapping.
	mu sync.Mutex

	logger *logger.Logger
}

func NewClientSyncService(payees PayeeService, transactions TransactionService, logger *logger.Logger) SyncService {
	return &clientSyncService{
		payees:       payees,
		transactions: transactions,
		newRunID:     utils.NewUUIDGenerator().Generate,
		logger:       logger,
	}
}

func (s *clientSyncService) SyncAll(ctx context.Context, full bool) ([]models.SyncResult, error) {
	key := "delta"
	if full {
		key = "full"
	}

	// The run outlives the caller that started it: the others joined it
	// and still wait for its result.
	runCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.syncAll(runCtx, full)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.Debug().Str("func", "clientSyncService.SyncAll").Str("mode", key).Msg("joined a running sync")
		}
		results, _ := res.Val.([]models.SyncResult)
		return results, res.Err
	}
}

// syncAll keeps a run id already on ctx and generates one otherwise.
func (s *clientSyncService) syncAll(ctx context.Context, full bool) ([]models.SyncResult, error) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = s.newRunID()
		ctx = utils.WithRunID(ctx, runID)
	}

	log := s.logger.With().Str("run_id", runID).Bool("full", full).Logger()
	log.Info().Str("func", "clientSyncService.syncAll").Msg("sync started")

	results := make([]models.SyncResult, 0, 2)

	payees, err := s.payees.Refresh(ctx, full)
	if err != nil {
		log.Err(err).Str("func", "clientSyncService.syncAll").Msg("payee refresh failed")
		return results, fmt.Errorf("sync payees: %w", err)
	}
	results = append(results, payees)

	transactions, err := s.transactions.Refresh(ctx, full)
	if err != nil {
		log.Err(err).Str("func", "clientSyncService.syncAll").Msg("transaction refresh failed")
		return results, fmt.Errorf("sync transactions: %w", err)
	}
	results = append(results, transactions)

	log.Info().Str("func", "clientSyncService.syncAll").Msg("sync finished")
	return results, nil
}
