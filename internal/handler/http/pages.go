// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type navItem struct {
	Name string
	Path string
}

var navItems = []navItem{
	{Name: "Payees", Path: "/"},
	{Name: "Transactions", Path: "/transactions"},
}

// pageData is the view model shared by both pages.
type pageData struct {
	Title   string
	Active  string
	Nav     []navItem
	Version string

	Synced    bool
	Knowledge int64
	Filter    string
	Error     string

	Payees       []models.Payee
	Transactions []models.Transaction
}

func (h *Handler) newPageData(r *http.Request, title string) pageData {
	return pageData{
		Title:   title,
		Active:  title,
		Nav:     navItems,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}
}

func (h *Handler) payeesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := h.newPageData(r, "Payees")
	data.Filter = strings.TrimSpace(r.URL.Query().Get("name"))

	payees, knowledge, err := h.services.PayeeService.List(ctx)
	data.Synced = !errors.Is(err, store.ErrServerKnowledgeNotFound)
	if err == nil && data.Filter != "" {
		payees, err = h.services.PayeeService.Search(ctx, data.Filter)
	}

	status := http.StatusOK
	if err != nil && data.Synced {
		status = statusFromError(err)
		data.Error = err.Error()
	}
	data.Payees = payees
	data.Knowledge = knowledge

	h.render(w, r, pagePayees, data, status)
}

func (h *Handler) transactionsPage(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r, "Transactions")

	transactions, knowledge, err := h.services.TransactionService.List(r.Context())
	data.Synced = !errors.Is(err, store.ErrServerKnowledgeNotFound)

	status := http.StatusOK
	if err != nil && data.Synced {
		status = statusFromError(err)
		data.Error = err.Error()
	}
	data.Transactions = transactions
	data.Knowledge = knowledge

	h.render(w, r, pageTransactions, data, status)
}

// render executes the page into a buffer first so a template failure still
// yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData, status int) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.pages[page].Execute(&buf, data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering page")
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
