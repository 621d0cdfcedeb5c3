package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
	"github.com/MKhiriev/ynab-payee-manager/internal/crypto"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type tokenService struct {
	settings store.SettingsRepository
	adapter  adapter.BudgetAdapter
	crypto   crypto.KeyChainService

	secretKey   string
	configToken string

	logger *logger.Logger
}

func NewTokenService(
	settings store.SettingsRepository,
	budgetAdapter adapter.BudgetAdapter,
	keyChain crypto.KeyChainService,
	secretKey, configToken string,
	logger *logger.Logger,
) TokenService {
	return &tokenService{
		settings:    settings,
		adapter:     budgetAdapter,
		crypto:      keyChain,
		secretKey:   secretKey,
		configToken: strings.TrimSpace(configToken),
		logger:      logger,
	}
}

func (s *tokenService) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if s.secretKey == "" {
		return ErrSecretKeyNotSet
	}

	key, err := s.sealingKey(ctx, true)
	if err != nil {
		return err
	}

	sealed, err := s.crypto.Seal(token, key)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	if err = s.settings.SetSetting(ctx, models.SettingsKeyToken, sealed); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	// the configured token keeps precedence for this process
	if s.configToken == "" {
		s.adapter.SetToken(token)
	}

	s.logger.Info().Str("func", "tokenService.SaveToken").Msg("api token saved")
	return nil
}

func (s *tokenService) LoadToken(ctx context.Context) error {
	if s.configToken != "" {
		s.adapter.SetToken(s.configToken)
		return nil
	}

	sealed, err := s.settings.GetSetting(ctx, models.SettingsKeyToken)
	if errors.Is(err, store.ErrSettingNotFound) {
		return ErrNoToken
	}
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}

	if s.secretKey == "" {
		return ErrSecretKeyNotSet
	}

	key, err := s.sealingKey(ctx, false)
	if err != nil {
		return err
	}

	token, err := s.crypto.Open(sealed, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenUnreadable, err)
	}

	s.adapter.SetToken(token)
	return nil
}

func (s *tokenService) ForgetToken(ctx context.Context) error {
	if err := s.settings.DeleteSetting(ctx, models.SettingsKeyToken); err != nil {
		return fmt.Errorf("delete stored token: %w", err)
	}

	if s.configToken == "" {
		s.adapter.SetToken("")
	}

	s.logger.Info().Str("func", "tokenService.ForgetToken").Msg("stored api token removed")
	return nil
}

// sealingKey derives the token key from the secret key and the install salt.
// With create set a missing salt is generated and stored.
func (s *tokenService) sealingKey(ctx context.Context, create bool) ([]byte, error) {
	encodedSalt, err := s.settings.GetSetting(ctx, models.SettingsKeyTokenSalt)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrSettingNotFound) && create:
		salt, genErr := s.crypto.GenerateSalt()
		if genErr != nil {
			return nil, fmt.Errorf("error generating salt: %w", genErr)
		}
		encodedSalt = base64.StdEncoding.EncodeToString(salt)
		if err = s.settings.SetSetting(ctx, models.SettingsKeyTokenSalt, encodedSalt); err != nil {
			return nil, fmt.Errorf("store token salt: %w", err)
		}
	case errors.Is(err, store.ErrSettingNotFound):
		return nil, ErrTokenSaltMissing
	default:
		return nil, fmt.Errorf("read token salt: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return nil, fmt.Errorf("decode token salt: %w", err)
	}

	return s.crypto.DeriveKey(s.secretKey, salt), nil
}
