package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSetting returns the value stored under key or [ErrSettingNotFound].
func (s *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectSettingQuery(s.builder, key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.withTx(ctx, "settingsRepository.GetSetting", func(ctx context.Context, tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// SetSetting stores value under key, replacing a previous value.
func (s *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSettingQuery(s.builder, key, value)
	if err != nil {
		return err
	}

	return s.withTx(ctx, "settingsRepository.SetSetting", func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.SetSetting").Str("key", key).Msg("failed to store setting")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// DeleteSetting removes key. Deleting a missing key is not an error.
func (s *settingsRepository) DeleteSetting(ctx context.Context, key string) error {
	query, args, err := buildDeleteSettingQuery(s.builder, key)
	if err != nil {
		return err
	}

	return s.withTx(ctx, "settingsRepository.DeleteSetting", func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.DeleteSetting").Str("key", key).Msg("failed to delete setting")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
