package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func renderPayees(w io.Writer, payees []models.Payee, knowledge int64) {
	t := newTable("ID", "Name", "Transfer Account ID", "Deleted")
	for _, p := range payees {
		transfer := "null"
		if p.TransferAccountID != nil {
			transfer = *p.TransferAccountID
		}
		t.Row(p.ID, p.Name, transfer, strconv.FormatBool(p.Deleted))
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d payees, server knowledge %d\n", len(payees), knowledge)
}

func renderTransactions(w io.Writer, transactions []models.Transaction, knowledge int64) {
	t := newTable("Date", "Amount", "Memo", "Cleared", "Approved", "Payee Name", "Category")
	for _, tr := range transactions {
		t.Row(
			tr.Date,
			models.FormatMilliunits(tr.Amount),
			deref(tr.Memo),
			tr.Cleared,
			strconv.FormatBool(tr.Approved),
			deref(tr.PayeeName),
			deref(tr.CategoryName),
		)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d transactions, server knowledge %d\n", len(transactions), knowledge)
}

func renderBudgets(w io.Writer, budgets []models.Budget) {
	t := newTable("ID", "Name", "Last Modified")
	for _, b := range budgets {
		modified := ""
		if b.LastModifiedOn != nil {
			modified = b.LastModifiedOn.Format("2006-01-02 15:04")
		}
		t.Row(b.ID, b.Name, modified)
	}
	fmt.Fprintln(w, t.Render())
}

func renderSyncResults(w io.Writer, results []models.SyncResult) {
	for _, r := range results {
		mode := "full"
		if r.Delta {
			mode = "delta"
		}
		fmt.Fprintf(w, "%s: %d records (%s), server knowledge %d, %s\n",
			r.Entity, r.Count, mode, r.ServerKnowledge, r.Duration.Round(time.Millisecond))
	}
}

func renderBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
