// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording shared by the terminal UI and the
// command line.
//
// All Msg* constants are short human-readable messages. UserMessage maps
// a service or store error onto one of them so every surface explains the
// same failure the same way.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
)

const (
	// MsgNoToken is shown when neither ADAPTER_TOKEN nor a saved token
	// exists.
	MsgNoToken = "no API token: run `ynab-payee-manager token set <token>` or set ADAPTER_TOKEN"

	// MsgSecretKeyNotSet is shown when a token must be sealed or opened but
	// APP_SECRET_KEY is empty.
	MsgSecretKeyNotSet = "APP_SECRET_KEY is not set, the saved token cannot be used"

	// MsgTokenUnreadable is shown when the saved token does not open with the
	// current secret key.
	MsgTokenUnreadable = "the saved token cannot be opened with this APP_SECRET_KEY, set the token again"

	// MsgTokenRejected is shown on HTTP 401 from the budgeting API.
	MsgTokenRejected = "the API token was rejected, check that it is still valid"

	MsgAccessDenied = "access to this budget is denied"

	// MsgBudgetNotFound is shown on HTTP 404, usually a wrong ADAPTER_BUDGET_ID.
	MsgBudgetNotFound = "budget not found, check ADAPTER_BUDGET_ID"

	MsgRateLimited = "API rate limit reached, try again in a few minutes"

	// MsgServerUnavailable covers 5xx answers and network failures.
	MsgServerUnavailable = "no network or the budgeting API is unavailable"

	MsgInvalidAPIData = "the budgeting API returned data that cannot be cached"

	// MsgNeverSynced is shown for an empty cache.
	MsgNeverSynced = "never synced, press s to sync"

	// MsgStorageError is shown for any local cache failure.
	MsgStorageError = "local cache error, see the log file for details"
)

var errorMessages = []struct {
	err error
	msg string
}{
	{service.ErrNoToken, MsgNoToken},
	{service.ErrSecretKeyNotSet, MsgSecretKeyNotSet},
	{service.ErrTokenUnreadable, MsgTokenUnreadable},
	{service.ErrTokenSaltMissing, MsgTokenUnreadable},
	{service.ErrTokenRejected, MsgTokenRejected},
	{service.ErrAccessDenied, MsgAccessDenied},
	{service.ErrBudgetNotFound, MsgBudgetNotFound},
	{service.ErrRateLimited, MsgRateLimited},
	{service.ErrBudgetAPIUnavailable, MsgServerUnavailable},
	{service.ErrInvalidAPIData, MsgInvalidAPIData},
	{store.ErrServerKnowledgeNotFound, MsgNeverSynced},
	{store.ErrBeginningTransaction, MsgStorageError},
	{store.ErrCommitingTransaction, MsgStorageError},
	{store.ErrExecutingQuery, MsgStorageError},
	{store.ErrExecutingStatement, MsgStorageError},
	{store.ErrScanningRow, MsgStorageError},
	{store.ErrScanningRows, MsgStorageError},
}

// UserMessage returns the message for the first known error in err's chain.
// Network failures are recognised by their text; anything else falls back to
// err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	if isNetworkError(err) {
		return MsgServerUnavailable
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
