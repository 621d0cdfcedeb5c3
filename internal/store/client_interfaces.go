package store

import (
	"context"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PayeeRepository is the local payee cache.
type PayeeRepository interface {
	// ReplacePayees clears the cache and stores data.Payees together with
	// data.ServerKnowledge in one transaction. It returns the stored ids in
	// input order and the stored knowledge.
	ReplacePayees(ctx context.Context, data models.PayeesData) ([]string, int64, error)
	// MergePayees upserts a delta and replaces the stored knowledge.
	MergePayees(ctx context.Context, data models.PayeesData) ([]string, int64, error)
	// GetPayees returns every cached payee ordered by name with the stored
	// knowledge, or ErrServerKnowledgeNotFound for a never filled cache.
	GetPayees(ctx context.Context) ([]models.Payee, int64, error)
	// FindPayeesByName returns payees whose name contains fragment, ignoring
	// case.
	FindPayeesByName(ctx context.Context, fragment string) ([]models.Payee, error)
}

// TransactionRepository is the local transaction cache.
type TransactionRepository interface {
	ReplaceTransactions(ctx context.Context, data models.TransactionsData) ([]string, int64, error)
	MergeTransactions(ctx context.Context, data models.TransactionsData) ([]string, int64, error)
	GetTransactions(ctx context.Context) ([]models.Transaction, int64, error)
}

// KnowledgeRepository reads the stored server knowledge per entity.
type KnowledgeRepository interface {
	GetKnowledge(ctx context.Context, key models.KnowledgeKey) (int64, error)
}

// SettingsRepository is a small key/value store for client settings.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
