// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Payee is a single payee record as returned by the budgeting API and as
// stored in the local cache.
type Payee struct {
	// ID is the API-assigned payee identifier (UUID string).
	ID string `json:"id"`
	// Name is the display name of the payee.
	Name string `json:"name"`
	// TransferAccountID is set only for transfer payees, i.e. payees that
	// represent another account of the same budget.
	TransferAccountID *string `json:"transfer_account_id"`
	// Deleted reports whether the payee was deleted on the server. Deleted
	// payees are still delivered by the API and kept in the cache.
	Deleted bool `json:"deleted"`
}

// PayeesResponse is the envelope of GET /budgets/{budget_id}/payees.
type PayeesResponse struct {
	Data PayeesData `json:"data"`
}

// PayeesData holds the payee list together with the server knowledge that
// the list corresponds to.
type PayeesData struct {
	Payees          []Payee `json:"payees"`
	ServerKnowledge int64   `json:"server_knowledge"`
}
