package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

// ---- Fakes ----

type fakePayeeSvc struct {
	payees    []models.Payee
	knowledge int64
	err       error
	searched  string
}

func (f *fakePayeeSvc) Refresh(context.Context, bool) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (f *fakePayeeSvc) List(context.Context) ([]models.Payee, int64, error) {
	return f.payees, f.knowledge, f.err
}

func (f *fakePayeeSvc) Search(_ context.Context, fragment string) ([]models.Payee, error) {
	f.searched = fragment
	var out []models.Payee
	for _, p := range f.payees {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(fragment)) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTransactionSvc struct {
	transactions []models.Transaction
	knowledge    int64
	err          error
}

func (f *fakeTransactionSvc) Refresh(context.Context, bool) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (f *fakeTransactionSvc) List(context.Context) ([]models.Transaction, int64, error) {
	return f.transactions, f.knowledge, f.err
}

type fakeSyncSvc struct {
	results []models.SyncResult
	err     error
	calls   int
	full    bool
}

func (f *fakeSyncSvc) SyncAll(_ context.Context, full bool) ([]models.SyncResult, error) {
	f.calls++
	f.full = full
	return f.results, f.err
}

type fakeAppInfoSvc struct {
	version string
}

func (f *fakeAppInfoSvc) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoSvc) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ---- Helpers ----

type testServices struct {
	payees       *fakePayeeSvc
	transactions *fakeTransactionSvc
	sync         *fakeSyncSvc
	appInfo      *fakeAppInfoSvc
}

func newTestServices() testServices {
	transfer := "acc-9"
	memo := "weekly shop"
	payee := "Grocery"
	return testServices{
		payees: &fakePayeeSvc{
			payees: []models.Payee{
				{ID: "p1", Name: "Grocery"},
				{ID: "p2", Name: "Transfer : Savings", TransferAccountID: &transfer},
			},
			knowledge: 42,
		},
		transactions: &fakeTransactionSvc{
			transactions: []models.Transaction{
				{ID: "t1", Date: "2024-05-01", Amount: -12340, Memo: &memo, Cleared: models.ClearedStatusCleared, PayeeName: &payee},
			},
			knowledge: 7,
		},
		sync:    &fakeSyncSvc{},
		appInfo: &fakeAppInfoSvc{version: "1.2.3"},
	}
}

func newTestHandler(s testServices) *Handler {
	return NewHandler(&service.ClientServices{
		PayeeService:       s.payees,
		TransactionService: s.transactions,
		SyncService:        s.sync,
		AppInfoService:     s.appInfo,
	}, logger.Nop())
}

func doRequest(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
