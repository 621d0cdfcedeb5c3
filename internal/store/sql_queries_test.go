// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ynab-payee-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_chunks(t *testing.T) {
	assert.Empty(t, chunks(0, 10))
	assert.Equal(t, [][2]int{{0, 3}}, chunks(3, 10))
	assert.Equal(t, [][2]int{{0, 2}, {2, 4}, {4, 5}}, chunks(5, 2))
}

func Test_chunkSize_StaysUnderParamLimit(t *testing.T) {
	assert.LessOrEqual(t, chunkSize(len(payeeColumns))*len(payeeColumns), maxStatementParams)
	assert.LessOrEqual(t, chunkSize(len(transactionColumns))*len(transactionColumns), maxStatementParams)
}

func Test_upsertSuffix(t *testing.T) {
	got := upsertSuffix("id", payeeColumns)
	assert.Equal(t,
		"ON CONFLICT (id) DO UPDATE SET name = excluded.name, transfer_account_id = excluded.transfer_account_id, deleted = excluded.deleted",
		got)
}

func Test_buildInsertPayeesQuery(t *testing.T) {
	payees := []models.Payee{
		{ID: "p1", Name: "A"},
		{ID: "p2", Name: "B", TransferAccountID: ptr("acc"), Deleted: true},
	}

	t.Run("sqlite placeholders", func(t *testing.T) {
		query, args, err := buildInsertPayeesQuery(sqliteBuilder, payees, false)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "insert into payees")
		require.NotContains(t, q, "on conflict")
		assert.Equal(t, 8, strings.Count(query, "?"))
		require.Len(t, args, 8)
		assert.Equal(t, "p1", args[0])
		assert.Equal(t, true, args[7])
	})

	t.Run("postgres placeholders with upsert", func(t *testing.T) {
		query, args, err := buildInsertPayeesQuery(postgresBuilder, payees, true)
		require.NoError(t, err)

		require.Contains(t, query, "$1")
		require.Contains(t, query, "$8")
		require.NotContains(t, query, "?")
		require.Contains(t, strings.ToLower(query), "on conflict (id) do update")
		require.Len(t, args, 8)
	})

	t.Run("error: empty list", func(t *testing.T) {
		_, _, err := buildInsertPayeesQuery(sqliteBuilder, nil, false)
		require.ErrorIs(t, err, ErrBuildingSQLQuery)
	})
}

func Test_buildSelectPayeesQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args, err := buildSelectPayeesQuery(sqliteBuilder, "  ")
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "from payees")
		require.NotContains(t, q, "where")
		require.Contains(t, q, "order by name, id")
		assert.Empty(t, args)
	})

	t.Run("name filter", func(t *testing.T) {
		query, args, err := buildSelectPayeesQuery(postgresBuilder, "Cafe")
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "lower(name) like $1")
		require.Len(t, args, 1)
		assert.Equal(t, "%cafe%", args[0])
	})
}

func Test_buildInsertTransactionsQuery(t *testing.T) {
	txs := []models.Transaction{{ID: "t1", Date: "2024-01-01", Amount: 1000, Cleared: models.ClearedStatusReconciled}}

	query, args, err := buildInsertTransactionsQuery(postgresBuilder, txs, true)
	require.NoError(t, err)

	require.Contains(t, query, "$12")
	require.Contains(t, strings.ToLower(query), "on conflict (id) do update set date = excluded.date")
	require.Len(t, args, len(transactionColumns))
	assert.Equal(t, "t1", args[0])
	assert.Equal(t, int64(1000), args[2])

	_, _, err = buildInsertTransactionsQuery(postgresBuilder, nil, false)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildSelectTransactionsQuery(t *testing.T) {
	query, args, err := buildSelectTransactionsQuery(sqliteBuilder)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range transactionColumns {
		require.Contains(t, q, col)
	}
	require.Contains(t, q, "order by date desc, id")
	assert.Empty(t, args)
}

func Test_buildKnowledgeQueries(t *testing.T) {
	query, args, err := buildSelectKnowledgeQuery(postgresBuilder, models.KnowledgePayees)
	require.NoError(t, err)
	assert.Contains(t, query, "key = $1")
	assert.Equal(t, []any{"payees"}, args)

	query, args, err = buildDeleteKnowledgeQuery(sqliteBuilder, models.KnowledgeTransactions)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "delete from server_knowledge")
	assert.Equal(t, []any{"transactions"}, args)

	query, args, err = buildInsertKnowledgeQuery(sqliteBuilder, models.KnowledgePayees, 9)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(query), "on conflict")
	assert.Equal(t, []any{"payees", int64(9)}, args)

	query, _, err = buildUpsertKnowledgeQuery(sqliteBuilder, models.KnowledgePayees, 9)
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE SET value = excluded.value")
}

func Test_buildSettingQueries(t *testing.T) {
	query, args, err := buildSelectSettingQuery(sqliteBuilder, "k")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "from settings")
	assert.Equal(t, []any{"k"}, args)

	query, args, err = buildUpsertSettingQuery(sqliteBuilder, "k", "v")
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (key)")
	assert.Equal(t, []any{"k", "v"}, args)

	query, args, err = buildDeleteSettingQuery(postgresBuilder, "k")
	require.NoError(t, err)
	assert.Contains(t, query, "key = $1")
	assert.Equal(t, []any{"k"}, args)
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
