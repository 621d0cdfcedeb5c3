// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The API detail, if any, is kept in the message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrTokenNotSet):
		return ErrNoToken
	case errors.Is(err, adapter.ErrUnauthorized):
		target = ErrTokenRejected
	case errors.Is(err, adapter.ErrForbidden):
		target = ErrAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		target = ErrBudgetNotFound
	case errors.Is(err, adapter.ErrRateLimited):
		target = ErrRateLimited
	case errors.Is(err, adapter.ErrInternalServerError):
		target = ErrBudgetAPIUnavailable
	case errors.Is(err, adapter.ErrBadRequest):
		target = ErrInvalidRequest
	default:
		return err
	}

	if detail := extractBody(err); detail != "" {
		return fmt.Errorf("%w: %s", target, detail)
	}
	return target
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return ""
}
