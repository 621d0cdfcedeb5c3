package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

const defaultTableHeight = 15

var payeeColumns = []table.Column{
	{Title: "ID", Width: 36},
	{Title: "Name", Width: 28},
	{Title: "Transfer Account ID", Width: 36},
	{Title: "Deleted", Width: 7},
}

var transactionColumns = []table.Column{
	{Title: "Date", Width: 10},
	{Title: "Amount", Width: 12},
	{Title: "Memo", Width: 24},
	{Title: "Cleared", Width: 10},
	{Title: "Approved", Width: 8},
	{Title: "Payee Name", Width: 22},
	{Title: "Category", Width: 18},
}

func newTable(columns []table.Column) table.Model {
	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
}

func payeeRows(payees []models.Payee) []table.Row {
	rows := make([]table.Row, 0, len(payees))
	for _, p := range payees {
		rows = append(rows, table.Row{
			p.ID,
			p.Name,
			valueOrNull(p.TransferAccountID),
			strconv.FormatBool(p.Deleted),
		})
	}
	return rows
}

func transactionRows(transactions []models.Transaction) []table.Row {
	rows := make([]table.Row, 0, len(transactions))
	for _, tr := range transactions {
		rows = append(rows, table.Row{
			tr.Date,
			models.FormatMilliunits(tr.Amount),
			valueOrEmpty(tr.Memo),
			tr.Cleared,
			strconv.FormatBool(tr.Approved),
			valueOrEmpty(tr.PayeeName),
			valueOrEmpty(tr.CategoryName),
		})
	}
	return rows
}

func valueOrNull(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
