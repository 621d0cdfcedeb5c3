package service

import (
	"context"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

// TokenService manages the personal access token used against the budgeting
// API. A token given in the configuration always wins and is never persisted;
// otherwise the token is kept sealed in the local settings store.
type TokenService interface {
	// SaveToken seals token with a key derived from the app secret key and a
	// per-install salt, stores it and installs it into the adapter.
	// Returns ErrEmptyToken for a blank token and ErrSecretKeyNotSet when no
	// secret key is configured.
	SaveToken(ctx context.Context, token string) error

	// LoadToken installs the configured or the stored token into the adapter.
	// Returns ErrNoToken when neither exists.
	LoadToken(ctx context.Context) error

	// ForgetToken removes the stored token and clears it from the adapter.
	ForgetToken(ctx context.Context) error
}

// PayeeService refreshes and reads the payee cache.
type PayeeService interface {
	// Refresh fetches payees from the API and writes them to the cache. With
	// full set, or when delta sync is disabled or the cache is empty, the
	// cache is replaced; otherwise only changes since the stored server
	// knowledge are requested and merged.
	Refresh(ctx context.Context, full bool) (models.SyncResult, error)

	// List returns every cached payee and the stored server knowledge.
	// store.ErrServerKnowledgeNotFound means the cache was never filled.
	List(ctx context.Context) ([]models.Payee, int64, error)

	// Search returns cached payees whose name contains fragment, ignoring case.
	Search(ctx context.Context, fragment string) ([]models.Payee, error)
}

// TransactionService refreshes and reads the transaction cache with the same
// semantics as [PayeeService].
type TransactionService interface {
	Refresh(ctx context.Context, full bool) (models.SyncResult, error)
	List(ctx context.Context) ([]models.Transaction, int64, error)
}

// SyncService refreshes every cached entity.
type SyncService interface {
	// SyncAll refreshes payees, then transactions. Concurrent calls with the
	// same mode share one run; runs never overlap. On failure the results of
	// the entities refreshed so far are returned with the error.
	SyncAll(ctx context.Context, full bool) ([]models.SyncResult, error)
}

// SyncJob defines the contract for a background worker that periodically
// calls SyncAll.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// BudgetService lists the budgets the token can see, to help pick
// ADAPTER_BUDGET_ID.
type BudgetService interface {
	List(ctx context.Context) ([]models.Budget, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
