// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIError is the error object returned by the budgeting API on non-2xx
// responses, e.g. {"error": {"id": "401", "name": "unauthorized", "detail": "..."}}.
type APIError struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// APIErrorResponse is the envelope around [APIError].
type APIErrorResponse struct {
	Error APIError `json:"error"`
}
