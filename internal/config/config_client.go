package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SecretKey seals and opens the persisted API token.
	SecretKey string
	// Version is the configured application version.
	Version string
}

// ClientAdapter holds settings used by the budgeting API transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// Token is the configured personal access token, if any.
	Token string
	// BudgetID is the budget whose data is cached.
	BudgetID string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RetryCount is the number of retries on throttling and server errors.
	RetryCount int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL of the cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync worker runs.
	SyncInterval time.Duration
	// DeltaSync enables incremental refreshes.
	DeltaSync bool
}

// ClientServer contains browser UI settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Log contains logger settings.
	Log ClientLog
	// Adapter contains the API address, credentials and timeouts.
	Adapter ClientAdapter
	// Storage contains cache storage settings.
	Storage ClientStorage
	// Server contains browser UI settings.
	Server ClientServer
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg into a [ClientConfig] without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SecretKey: cfg.App.SecretKey,
			Version:   cfg.App.Version,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Token:          cfg.Adapter.Token,
			BudgetID:       cfg.Adapter.BudgetID,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			DeltaSync:    cfg.Workers.DeltaSync,
		},
	}
}
