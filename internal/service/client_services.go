package service

import (
	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/crypto"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type ClientServices struct {
	TokenService       TokenService
	PayeeService       PayeeService
	TransactionService TransactionService
	SyncService        SyncService
	SyncJob            SyncJob
	BudgetService      BudgetService
	AppInfoService     AppInfoService
}

func NewClientServices(
	localStore *store.ClientStorages,
	budgetAdapter adapter.BudgetAdapter,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	payeeSvc := NewPayeeService(localStore.PayeeRepository, localStore.KnowledgeRepository, budgetAdapter,
		cfg.Adapter.BudgetID, cfg.Workers.DeltaSync, logger)
	transactionSvc := NewTransactionService(localStore.TransactionRepository, localStore.KnowledgeRepository, budgetAdapter,
		cfg.Adapter.BudgetID, cfg.Workers.DeltaSync, logger)
	syncSvc := NewClientSyncService(payeeSvc, transactionSvc, logger)

	return &ClientServices{
		TokenService: NewTokenService(localStore.SettingsRepository, budgetAdapter, crypto.NewKeyChainService(),
			cfg.App.SecretKey, cfg.Adapter.Token, logger),
		PayeeService:       payeeSvc,
		TransactionService: transactionSvc,
		SyncService:        syncSvc,
		SyncJob:            NewClientSyncJob(syncSvc, logger),
		BudgetService:      NewBudgetService(budgetAdapter, logger),
		AppInfoService:     appInfo,
	}, nil
}
