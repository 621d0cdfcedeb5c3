package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/ynab-payee-manager/internal/store"
)

const statusTTL = 2 * time.Second

// cmdLoadPayees reads the cache. A non-empty filter narrows the list by name;
// the knowledge always comes from the full read.
func (m appModel) cmdLoadPayees(filter string) tea.Cmd {
	return m.loadPayees(filter, false)
}

func (m appModel) loadPayees(filter string, background bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PayeeService
	return func() tea.Msg {
		payees, knowledge, err := svc.List(ctx)
		if errors.Is(err, store.ErrServerKnowledgeNotFound) {
			return payeesLoadedMsg{background: background}
		}
		if err == nil && filter != "" {
			payees, err = svc.Search(ctx, filter)
		}
		return payeesLoadedMsg{payees: payees, knowledge: knowledge, synced: true, background: background, err: err}
	}
}

func (m appModel) cmdLoadTransactions() tea.Cmd {
	return m.loadTransactions(false)
}

func (m appModel) loadTransactions(background bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransactionService
	return func() tea.Msg {
		transactions, knowledge, err := svc.List(ctx)
		if errors.Is(err, store.ErrServerKnowledgeNotFound) {
			return transactionsLoadedMsg{background: background}
		}
		return transactionsLoadedMsg{transactions: transactions, knowledge: knowledge, synced: true, background: background, err: err}
	}
}

func (m appModel) cmdSync(full bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		results, err := svc.SyncAll(ctx, full)
		return syncDoneMsg{results: results, full: full, err: err}
	}
}

func (m appModel) cmdCopyToClipboard(value string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(value); err != nil {
			return copiedMsg{value: value, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{value: value}
	}
}

// cmdScheduleReload returns nil when periodic reloads are off.
func (m appModel) cmdScheduleReload() tea.Cmd {
	if m.reload <= 0 {
		return nil
	}
	return tea.Tick(m.reload, func(time.Time) tea.Msg {
		return reloadTickMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
