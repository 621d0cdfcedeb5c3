package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/models"
	"github.com/go-resty/resty/v2"
)

const (
	lastKnowledgeParam = "last_knowledge_of_server"
	retryWaitTime      = 500 * time.Millisecond
	userAgent          = "ynab-payee-manager"
)

type httpBudgetAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPBudgetAdapter constructs an HTTP/REST implementation of
// [BudgetAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, request timeout and retry policy. A non-empty
// adapterCfg.Token is installed right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBudgetAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BudgetAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:       adapterCfg.RequestTimeout,
		RetryCount:    adapterCfg.RetryCount,
		RetryWaitTime: retryWaitTime,
		UserAgent:     userAgent,
	})
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	a := &httpBudgetAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BudgetAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpBudgetAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [BudgetAdapter].
func (h *httpBudgetAdapter) Token() string {
	return h.token
}

// GetPayees implements [BudgetAdapter]. It calls
// GET /budgets/{budget_id}/payees and unwraps the data envelope.
func (h *httpBudgetAdapter) GetPayees(ctx context.Context, budgetID string, lastKnowledge int64) (models.PayeesData, error) {
	var result models.PayeesResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PayeesData{}, err
	}

	resp, err := withKnowledge(req, lastKnowledge).
		SetPathParam("budget_id", budgetID).
		SetResult(&result).
		Get("/budgets/{budget_id}/payees")
	if err != nil {
		return models.PayeesData{}, fmt.Errorf("get payees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpBudgetAdapter.GetPayees").Int("status", resp.StatusCode()).Msg("payees request failed")
		return models.PayeesData{}, err
	}

	h.logger.Debug().
		Str("func", "httpBudgetAdapter.GetPayees").
		Int("count", len(result.Data.Payees)).
		Int64("server_knowledge", result.Data.ServerKnowledge).
		Bool("delta", lastKnowledge > 0).
		Msg("payees fetched")

	return result.Data, nil
}

// GetTransactions implements [BudgetAdapter]. It calls
// GET /budgets/{budget_id}/transactions and unwraps the data envelope.
func (h *httpBudgetAdapter) GetTransactions(ctx context.Context, budgetID string, lastKnowledge int64) (models.TransactionsData, error) {
	var result models.TransactionsResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TransactionsData{}, err
	}

	resp, err := withKnowledge(req, lastKnowledge).
		SetPathParam("budget_id", budgetID).
		SetResult(&result).
		Get("/budgets/{budget_id}/transactions")
	if err != nil {
		return models.TransactionsData{}, fmt.Errorf("get transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpBudgetAdapter.GetTransactions").Int("status", resp.StatusCode()).Msg("transactions request failed")
		return models.TransactionsData{}, err
	}

	return result.Data, nil
}

// GetBudgets implements [BudgetAdapter]. It calls GET /budgets.
func (h *httpBudgetAdapter) GetBudgets(ctx context.Context) ([]models.Budget, error) {
	var result models.BudgetsResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetResult(&result).
		Get("/budgets")
	if err != nil {
		return nil, fmt.Errorf("get budgets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data.Budgets, nil
}

// authedRequest returns a new resty request bound to ctx with the bearer
// token attached, or [ErrTokenNotSet] when the adapter holds no token.
func (h *httpBudgetAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrTokenNotSet
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}

func withKnowledge(req *resty.Request, lastKnowledge int64) *resty.Request {
	if lastKnowledge > 0 {
		req.SetQueryParam(lastKnowledgeParam, strconv.FormatInt(lastKnowledge, 10))
	}
	return req
}
