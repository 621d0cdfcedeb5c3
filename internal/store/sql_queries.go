package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

const (
	payeesTable       = "payees"
	transactionsTable = "transactions"
	knowledgeTable    = "server_knowledge"
	settingsTable     = "settings"

	// maxStatementParams keeps multi-row inserts under SQLite's historical
	// bound variable limit.
	maxStatementParams = 999
)

var (
	payeeColumns = []string{"id", "name", "transfer_account_id", "deleted"}

	transactionColumns = []string{
		"id", "date", "amount", "memo", "cleared", "approved", "account_name",
		"payee_id", "payee_name", "category_name", "transfer_account_id", "deleted",
	}
)

// chunkSize returns how many rows with columns values fit into one statement.
func chunkSize(columns int) int {
	return maxStatementParams / columns
}

// chunks splits n rows into [start, end) ranges of at most size rows.
func chunks(n, size int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		out = append(out, [2]int{start, end})
	}
	return out
}

// upsertSuffix builds an ON CONFLICT clause updating every non-key column.
// Both SQLite and PostgreSQL accept it.
func upsertSuffix(key string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == key {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

func buildInsertPayeesQuery(b sq.StatementBuilderType, payees []models.Payee, upsert bool) (string, []any, error) {
	if len(payees) == 0 {
		return "", nil, fmt.Errorf("%w: no payees to insert", ErrBuildingSQLQuery)
	}

	insert := b.Insert(payeesTable).Columns(payeeColumns...)
	for _, p := range payees {
		insert = insert.Values(p.ID, p.Name, p.TransferAccountID, p.Deleted)
	}
	if upsert {
		insert = insert.Suffix(upsertSuffix("id", payeeColumns))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPayeesQuery selects payees ordered by name. A non-empty fragment
// restricts the result to names containing it, ignoring case. The substring
// match scans the table; payees_name_idx only helps the ordering.
func buildSelectPayeesQuery(b sq.StatementBuilderType, fragment string) (string, []any, error) {
	sel := b.Select(payeeColumns...).
		From(payeesTable).
		OrderBy("name", "id")

	if fragment = strings.TrimSpace(fragment); fragment != "" {
		sel = sel.Where(sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(fragment))+"%"))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildDeleteAllQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	query, args, err := b.Delete(table).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertTransactionsQuery(b sq.StatementBuilderType, txs []models.Transaction, upsert bool) (string, []any, error) {
	if len(txs) == 0 {
		return "", nil, fmt.Errorf("%w: no transactions to insert", ErrBuildingSQLQuery)
	}

	insert := b.Insert(transactionsTable).Columns(transactionColumns...)
	for _, t := range txs {
		insert = insert.Values(
			t.ID, t.Date, t.Amount, t.Memo, t.Cleared, t.Approved, t.AccountName,
			t.PayeeID, t.PayeeName, t.CategoryName, t.TransferAccountID, t.Deleted,
		)
	}
	if upsert {
		insert = insert.Suffix(upsertSuffix("id", transactionColumns))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTransactionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("date DESC", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectKnowledgeQuery(b sq.StatementBuilderType, key models.KnowledgeKey) (string, []any, error) {
	query, args, err := b.Select("value").
		From(knowledgeTable).
		Where(sq.Eq{"key": key.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteKnowledgeQuery(b sq.StatementBuilderType, key models.KnowledgeKey) (string, []any, error) {
	query, args, err := b.Delete(knowledgeTable).
		Where(sq.Eq{"key": key.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertKnowledgeQuery(b sq.StatementBuilderType, key models.KnowledgeKey, value int64) (string, []any, error) {
	query, args, err := b.Insert(knowledgeTable).
		Columns("key", "value").
		Values(key.String(), value).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertKnowledgeQuery(b sq.StatementBuilderType, key models.KnowledgeKey, value int64) (string, []any, error) {
	query, args, err := b.Insert(knowledgeTable).
		Columns("key", "value").
		Values(key.String(), value).
		Suffix(upsertSuffix("key", []string{"key", "value"})).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSettingQuery(b sq.StatementBuilderType, key, value string) (string, []any, error) {
	query, args, err := b.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(upsertSuffix("key", []string{"key", "value"})).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.Delete(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
