package tui

import "github.com/MKhiriev/ynab-payee-manager/models"

type payeesLoadedMsg struct {
	payees     []models.Payee
	knowledge  int64
	synced     bool
	// background marks a periodic reload rather than a user action.
	background bool
	err        error
}

type transactionsLoadedMsg struct {
	transactions []models.Transaction
	knowledge    int64
	synced       bool
	background   bool
	err          error
}

type syncDoneMsg struct {
	results []models.SyncResult
	full    bool
	err     error
}

type copiedMsg struct {
	value string
	err   error
}

type clearStatusMsg struct{}

type reloadTickMsg struct{}
