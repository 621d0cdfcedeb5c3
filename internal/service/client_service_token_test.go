package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/ynab-payee-manager/internal/crypto"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/mock"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tokenTestDeps struct {
	settings *mock.MockSettingsRepository
	adapter  *mock.MockBudgetAdapter
	keyChain *mock.MockKeyChainService
}

func newTestTokenSvc(t *testing.T, secretKey, configToken string) (TokenService, tokenTestDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := tokenTestDeps{
		settings: mock.NewMockSettingsRepository(ctrl),
		adapter:  mock.NewMockBudgetAdapter(ctrl),
		keyChain: mock.NewMockKeyChainService(ctrl),
	}

	svc := NewTokenService(deps.settings, deps.adapter, deps.keyChain, secretKey, configToken, logger.Nop())
	return svc, deps
}

var (
	testSalt    = []byte("0123456789abcdef")
	testSaltB64 = base64.StdEncoding.EncodeToString(testSalt)
	testKey     = []byte("0123456789abcdef0123456789abcdef")
)

// ── SaveToken ────────────────────────────────────────────────────────────────

func TestTokenService_SaveToken_FirstUseCreatesSalt(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	gomock.InOrder(
		d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return("", store.ErrSettingNotFound),
		d.keyChain.EXPECT().GenerateSalt().Return(testSalt, nil),
		d.settings.EXPECT().SetSetting(ctx, models.SettingsKeyTokenSalt, testSaltB64).Return(nil),
		d.keyChain.EXPECT().DeriveKey("secret", testSalt).Return(testKey),
		d.keyChain.EXPECT().Seal("tok-123", testKey).Return("sealed", nil),
		d.settings.EXPECT().SetSetting(ctx, models.SettingsKeyToken, "sealed").Return(nil),
		d.adapter.EXPECT().SetToken("tok-123"),
	)

	require.NoError(t, svc.SaveToken(ctx, "  tok-123 "))
}

func TestTokenService_SaveToken_ReusesSalt(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return(testSaltB64, nil)
	d.keyChain.EXPECT().DeriveKey("secret", testSalt).Return(testKey)
	d.keyChain.EXPECT().Seal("tok", testKey).Return("sealed", nil)
	d.settings.EXPECT().SetSetting(ctx, models.SettingsKeyToken, "sealed").Return(nil)
	d.adapter.EXPECT().SetToken("tok")

	require.NoError(t, svc.SaveToken(ctx, "tok"))
}

func TestTokenService_SaveToken_ConfigTokenKeepsPrecedence(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "from-config")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return(testSaltB64, nil)
	d.keyChain.EXPECT().DeriveKey("secret", testSalt).Return(testKey)
	d.keyChain.EXPECT().Seal("tok", testKey).Return("sealed", nil)
	d.settings.EXPECT().SetSetting(ctx, models.SettingsKeyToken, "sealed").Return(nil)
	// no SetToken call expected

	require.NoError(t, svc.SaveToken(ctx, "tok"))
}

func TestTokenService_SaveToken_Validation(t *testing.T) {
	svc, _ := newTestTokenSvc(t, "secret", "")
	require.ErrorIs(t, svc.SaveToken(context.Background(), "   "), ErrEmptyToken)

	svc, _ = newTestTokenSvc(t, "", "")
	require.ErrorIs(t, svc.SaveToken(context.Background(), "tok"), ErrSecretKeyNotSet)
}

func TestTokenService_SaveToken_StoreError(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return(testSaltB64, nil)
	d.keyChain.EXPECT().DeriveKey("secret", testSalt).Return(testKey)
	d.keyChain.EXPECT().Seal("tok", testKey).Return("sealed", nil)
	d.settings.EXPECT().SetSetting(ctx, models.SettingsKeyToken, "sealed").Return(store.ErrExecutingStatement)

	require.ErrorIs(t, svc.SaveToken(ctx, "tok"), store.ErrExecutingStatement)
}

// ── LoadToken ────────────────────────────────────────────────────────────────

func TestTokenService_LoadToken_ConfigToken(t *testing.T) {
	svc, d := newTestTokenSvc(t, "", "from-config")

	d.adapter.EXPECT().SetToken("from-config")

	require.NoError(t, svc.LoadToken(context.Background()))
}

func TestTokenService_LoadToken_Stored(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyToken).Return("sealed", nil)
	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return(testSaltB64, nil)
	d.keyChain.EXPECT().DeriveKey("secret", testSalt).Return(testKey)
	d.keyChain.EXPECT().Open("sealed", testKey).Return("tok", nil)
	d.adapter.EXPECT().SetToken("tok")

	require.NoError(t, svc.LoadToken(ctx))
}

func TestTokenService_LoadToken_NothingStored(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyToken).Return("", store.ErrSettingNotFound)

	require.ErrorIs(t, svc.LoadToken(ctx), ErrNoToken)
}

func TestTokenService_LoadToken_MissingSalt(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyToken).Return("sealed", nil)
	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return("", store.ErrSettingNotFound)

	require.ErrorIs(t, svc.LoadToken(ctx), ErrTokenSaltMissing)
}

func TestTokenService_LoadToken_WrongSecret(t *testing.T) {
	svc, d := newTestTokenSvc(t, "other-secret", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyToken).Return("sealed", nil)
	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyTokenSalt).Return(testSaltB64, nil)
	d.keyChain.EXPECT().DeriveKey("other-secret", testSalt).Return(testKey)
	d.keyChain.EXPECT().Open("sealed", testKey).Return("", crypto.ErrDecryptionFailed)

	err := svc.LoadToken(ctx)
	require.ErrorIs(t, err, ErrTokenUnreadable)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestTokenService_LoadToken_NoSecretKey(t *testing.T) {
	svc, d := newTestTokenSvc(t, "", "")
	ctx := context.Background()

	d.settings.EXPECT().GetSetting(ctx, models.SettingsKeyToken).Return("sealed", nil)

	require.ErrorIs(t, svc.LoadToken(ctx), ErrSecretKeyNotSet)
}

// ── ForgetToken ──────────────────────────────────────────────────────────────

func TestTokenService_ForgetToken(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().DeleteSetting(ctx, models.SettingsKeyToken).Return(nil)
	d.adapter.EXPECT().SetToken("")

	require.NoError(t, svc.ForgetToken(ctx))
}

func TestTokenService_ForgetToken_Error(t *testing.T) {
	svc, d := newTestTokenSvc(t, "secret", "")
	ctx := context.Background()

	d.settings.EXPECT().DeleteSetting(ctx, models.SettingsKeyToken).Return(store.ErrExecutingStatement)

	require.ErrorIs(t, svc.ForgetToken(ctx), store.ErrExecutingStatement)
}

// ── round trip with the real keychain ────────────────────────────────────────

// memSettings is an in-memory SettingsRepository.
type memSettings map[string]string

func (m memSettings) GetSetting(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (m memSettings) SetSetting(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memSettings) DeleteSetting(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func TestTokenService_RoundTrip_RealKeyChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	budgetAdapter := mock.NewMockBudgetAdapter(ctrl)
	settings := memSettings{}
	ctx := context.Background()

	svc := NewTokenService(settings, budgetAdapter, crypto.NewKeyChainService(), "secret", "", logger.Nop())

	budgetAdapter.EXPECT().SetToken("tok-xyz").Times(2)

	require.NoError(t, svc.SaveToken(ctx, "tok-xyz"))
	assert.NotContains(t, settings[models.SettingsKeyToken], "tok-xyz")
	assert.NotEmpty(t, settings[models.SettingsKeyTokenSalt])

	require.NoError(t, svc.LoadToken(ctx))

	other := NewTokenService(settings, budgetAdapter, crypto.NewKeyChainService(), "wrong", "", logger.Nop())
	require.ErrorIs(t, other.LoadToken(ctx), ErrTokenUnreadable)
}
