package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deleteTransactionsSQL = regexp.QuoteMeta("DELETE FROM transactions")
	insertTransactionsSQL = regexp.QuoteMeta("INSERT INTO transactions")
	selectTransactionsSQL = regexp.QuoteMeta("FROM transactions ORDER BY date DESC, id")
)

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewTransactionRepository(newDBFromSQL(db), logger.Nop()).(*transactionRepository), mock
}

func sampleTransactions() models.TransactionsData {
	return models.TransactionsData{
		Transactions: []models.Transaction{
			{
				ID: "t1", Date: "2024-03-02", Amount: -12340, Memo: ptr("lunch"),
				Cleared: models.ClearedStatusCleared, Approved: true, AccountName: "Checking",
				PayeeID: ptr("p1"), PayeeName: ptr("Cafe"), CategoryName: ptr("Dining"),
			},
		},
		ServerKnowledge: 55,
	}
}

func TestReplaceTransactions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteTransactionsSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertTransactionsSQL).
			WithArgs("t1", "2024-03-02", int64(-12340), "lunch", "cleared", true, "Checking", "p1", "Cafe", "Dining", nil, false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(deleteKnowledgeSQL).WithArgs("transactions").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertKnowledgeSQL).WithArgs("transactions", int64(55)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ids, knowledge, err := repo.ReplaceTransactions(testContext(), sampleTransactions())

		require.NoError(t, err)
		assert.Equal(t, []string{"t1"}, ids)
		assert.Equal(t, int64(55), knowledge)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: clear fails", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteTransactionsSQL).WillReturnError(errors.New("readonly database"))
		mock.ExpectRollback()

		_, _, err := repo.ReplaceTransactions(testContext(), sampleTransactions())

		require.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMergeTransactions(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(insertTransactionsSQL + ".*" + regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertKnowledgeSQL).WithArgs("transactions", int64(55)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ids, knowledge, err := repo.MergeTransactions(testContext(), sampleTransactions())

	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)
	assert.Equal(t, int64(55), knowledge)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactions(t *testing.T) {
	columns := []string{
		"id", "date", "amount", "memo", "cleared", "approved", "account_name",
		"payee_id", "payee_name", "category_name", "transfer_account_id", "deleted",
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(selectKnowledgeSQL).WithArgs("transactions").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(55)))
		mock.ExpectQuery(selectTransactionsSQL).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("t1", "2024-03-02", int64(-12340), "lunch", "cleared", true, "Checking", "p1", "Cafe", "Dining", nil, false).
				AddRow("t0", "2024-03-01", int64(5000), nil, "uncleared", false, "Checking", nil, nil, nil, "acc-2", false))
		mock.ExpectCommit()

		txs, knowledge, err := repo.GetTransactions(testContext())

		require.NoError(t, err)
		assert.Equal(t, int64(55), knowledge)
		require.Len(t, txs, 2)
		assert.Equal(t, sampleTransactions().Transactions[0], txs[0])
		assert.Nil(t, txs[1].Memo)
		assert.Nil(t, txs[1].PayeeName)
		require.NotNil(t, txs[1].TransferAccountID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: never synced", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(selectKnowledgeSQL).WillReturnRows(sqlmock.NewRows([]string{"value"}))
		mock.ExpectRollback()

		_, _, err := repo.GetTransactions(testContext())

		require.ErrorIs(t, err, ErrServerKnowledgeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
