package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/internal/utils"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type payeesResponse struct {
	Payees          []models.Payee `json:"payees"`
	ServerKnowledge int64          `json:"server_knowledge"`
	Synced          bool           `json:"synced"`
}

type transactionsResponse struct {
	Transactions    []models.Transaction `json:"transactions"`
	ServerKnowledge int64                `json:"server_knowledge"`
	Synced          bool                 `json:"synced"`
}

type syncResponse struct {
	Results []models.SyncResult `json:"results"`
}

func (h *Handler) listPayees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payees, knowledge, err := h.services.PayeeService.List(ctx)
	if errors.Is(err, store.ErrServerKnowledgeNotFound) {
		utils.WriteJSON(w, payeesResponse{Payees: []models.Payee{}}, http.StatusOK)
		return
	}
	if err == nil {
		if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
			payees, err = h.services.PayeeService.Search(ctx, name)
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPayees").Msg("error reading payees")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if payees == nil {
		payees = []models.Payee{}
	}
	utils.WriteJSON(w, payeesResponse{Payees: payees, ServerKnowledge: knowledge, Synced: true}, http.StatusOK)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	transactions, knowledge, err := h.services.TransactionService.List(r.Context())
	if errors.Is(err, store.ErrServerKnowledgeNotFound) {
		utils.WriteJSON(w, transactionsResponse{Transactions: []models.Transaction{}}, http.StatusOK)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTransactions").Msg("error reading transactions")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	utils.WriteJSON(w, transactionsResponse{Transactions: transactions, ServerKnowledge: knowledge, Synced: true}, http.StatusOK)
}

// sync runs one refresh of every entity. Browser form posts are redirected
// back to the page they came from.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	full := false
	if raw := r.URL.Query().Get("full"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteError(w, ErrInvalidQueryParameter.Error()+": full", http.StatusBadRequest)
			return
		}
		full = parsed
	}

	results, err := h.services.SyncService.SyncAll(r.Context(), full)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Bool("full", full).Msg("sync failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if wantsHTML(r) {
		target := r.Referer()
		if target == "" {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	utils.WriteJSON(w, syncResponse{Results: results}, http.StatusOK)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
