package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type fakeTokens struct {
	loadErr error
	loads   int
	saved   string
	forgot  bool
}

func (f *fakeTokens) SaveToken(_ context.Context, token string) error {
	f.saved = token
	return nil
}

func (f *fakeTokens) LoadToken(context.Context) error {
	f.loads++
	return f.loadErr
}

func (f *fakeTokens) ForgetToken(context.Context) error {
	f.forgot = true
	return nil
}

type fakeSync struct {
	runID string
	full  bool
}

func (f *fakeSync) SyncAll(ctx context.Context, full bool) ([]models.SyncResult, error) {
	f.runID, _ = utils.GetRunIDFromContext(ctx)
	f.full = full
	return []models.SyncResult{{RunID: f.runID, Entity: models.KnowledgePayees}}, nil
}

type fakePayees struct {
	listErr  error
	searched string
}

func (f *fakePayees) Refresh(context.Context, bool) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (f *fakePayees) List(context.Context) ([]models.Payee, int64, error) {
	return []models.Payee{{ID: "p1", Name: "Grocery"}, {ID: "p2", Name: "Rent"}}, 9, f.listErr
}

func (f *fakePayees) Search(_ context.Context, fragment string) ([]models.Payee, error) {
	f.searched = fragment
	return []models.Payee{{ID: "p2", Name: "Rent"}}, nil
}

type fakeBudgets struct {
	calls int
}

func (f *fakeBudgets) List(context.Context) ([]models.Budget, error) {
	f.calls++
	return []models.Budget{{ID: "b1", Name: "Household"}}, nil
}

func newTestApp(tokens *fakeTokens, sync *fakeSync, payees *fakePayees, budgets *fakeBudgets) *App {
	services := &service.ClientServices{
		TokenService:  tokens,
		SyncService:   sync,
		PayeeService:  payees,
		BudgetService: budgets,
	}
	return newApp(&config.ClientConfig{}, nil, services, models.NewAppBuildInfo("", "", ""), logger.Nop())
}

func TestApp_Sync_LoadsTokenAndSetsRunID(t *testing.T) {
	tokens, sync := &fakeTokens{}, &fakeSync{}
	a := newTestApp(tokens, sync, &fakePayees{}, &fakeBudgets{})

	results, err := a.Sync(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, 1, tokens.loads)
	assert.True(t, sync.full)
	require.NotEmpty(t, sync.runID)
	require.Len(t, results, 1)
	assert.Equal(t, sync.runID, results[0].RunID)
}

func TestApp_Sync_TokenErrors(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
		wantErr error
	}{
		{name: "no token", loadErr: service.ErrNoToken, wantErr: service.ErrNoToken},
		{name: "secret missing", loadErr: service.ErrSecretKeyNotSet, wantErr: service.ErrSecretKeyNotSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := &fakeSync{}
			a := newTestApp(&fakeTokens{loadErr: tt.loadErr}, sync, &fakePayees{}, &fakeBudgets{})

			_, err := a.Sync(context.Background(), false)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, sync.runID, "sync must not run without a token")
		})
	}
}

func TestApp_Payees(t *testing.T) {
	payees := &fakePayees{}
	a := newTestApp(&fakeTokens{}, &fakeSync{}, payees, &fakeBudgets{})
	ctx := context.Background()

	all, knowledge, err := a.Payees(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(9), knowledge)
	assert.Empty(t, payees.searched)

	filtered, knowledge, err := a.Payees(ctx, "ren")
	require.NoError(t, err)
	assert.Equal(t, "ren", payees.searched)
	assert.Equal(t, []models.Payee{{ID: "p2", Name: "Rent"}}, filtered)
	assert.Equal(t, int64(9), knowledge)
}

func TestApp_Payees_NeverSynced(t *testing.T) {
	payees := &fakePayees{listErr: store.ErrServerKnowledgeNotFound}
	a := newTestApp(&fakeTokens{}, &fakeSync{}, payees, &fakeBudgets{})

	_, _, err := a.Payees(context.Background(), "ren")

	require.ErrorIs(t, err, store.ErrServerKnowledgeNotFound)
	assert.Empty(t, payees.searched)
}

func TestApp_Budgets(t *testing.T) {
	budgets := &fakeBudgets{}
	a := newTestApp(&fakeTokens{}, &fakeSync{}, &fakePayees{}, budgets)

	got, err := a.Budgets(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	a = newTestApp(&fakeTokens{loadErr: errors.New("disk")}, &fakeSync{}, &fakePayees{}, budgets)
	_, err = a.Budgets(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load api token")
	assert.Equal(t, 1, budgets.calls)
}

func TestApp_TokenManagement(t *testing.T) {
	tokens := &fakeTokens{}
	a := newTestApp(tokens, &fakeSync{}, &fakePayees{}, &fakeBudgets{})
	ctx := context.Background()

	require.NoError(t, a.SetToken(ctx, "secret-token"))
	assert.Equal(t, "secret-token", tokens.saved)

	require.NoError(t, a.ClearToken(ctx))
	assert.True(t, tokens.forgot)
}

func TestApp_CloseWithoutStorage(t *testing.T) {
	a := newTestApp(&fakeTokens{}, &fakeSync{}, &fakePayees{}, &fakeBudgets{})
	assert.NoError(t, a.Close())
}

func TestNewApp_SQLite(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{Version: "0.1.0"},
		Adapter: config.ClientAdapter{HTTPAddress: "https://api.ynab.com/v1", BudgetID: "last-used"},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: t.TempDir() + "/cache.db"}},
	}

	a, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	_, _, err = a.Payees(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrServerKnowledgeNotFound)
	assert.Equal(t, "0.1.0", a.services.AppInfoService.GetAppVersion(context.Background()))
}
