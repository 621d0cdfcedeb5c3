// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cleared states of a transaction.
const (
	ClearedStatusCleared    = "cleared"
	ClearedStatusUncleared  = "uncleared"
	ClearedStatusReconciled = "reconciled"
)

// Transaction is a budget transaction as returned by
// GET /budgets/{budget_id}/transactions.
type Transaction struct {
	ID string `json:"id"`
	// Date is an ISO date (YYYY-MM-DD).
	Date string `json:"date"`
	// Amount is expressed in milliunits: 1000 == 1.00 in the budget currency.
	Amount            int64   `json:"amount"`
	Memo              *string `json:"memo"`
	Cleared           string  `json:"cleared"`
	Approved          bool    `json:"approved"`
	AccountName       string  `json:"account_name"`
	PayeeID           *string `json:"payee_id"`
	PayeeName         *string `json:"payee_name"`
	CategoryName      *string `json:"category_name"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

// TransactionsResponse is the envelope of the transactions endpoint.
type TransactionsResponse struct {
	Data TransactionsData `json:"data"`
}

// TransactionsData holds a transaction list with its server knowledge.
type TransactionsData struct {
	Transactions    []Transaction `json:"transactions"`
	ServerKnowledge int64         `json:"server_knowledge"`
}
