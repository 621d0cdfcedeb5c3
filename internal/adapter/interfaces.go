// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the YNAB budgeting API.
//
// The primary abstraction is [BudgetAdapter], which decouples the service
// layer from the REST transport. The package ships an HTTP implementation
// ([NewHTTPBudgetAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/budget_adapter_mock.go -package=mock

// BudgetAdapter defines communication with the budgeting API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BudgetAdapter interface {
	// SetToken stores the personal access token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// GetPayees fetches the payees of budgetID. When lastKnowledge is
	// positive only the payees changed since that server knowledge are
	// returned. Returns [ErrTokenNotSet] without a network call when no token
	// is set.
	GetPayees(ctx context.Context, budgetID string, lastKnowledge int64) (models.PayeesData, error)

	// GetTransactions fetches the transactions of budgetID with the same
	// delta semantics as GetPayees.
	GetTransactions(ctx context.Context, budgetID string, lastKnowledge int64) (models.TransactionsData, error)

	// GetBudgets lists the budgets visible to the token.
	GetBudgets(ctx context.Context) ([]models.Budget, error)
}
