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

func newTestSettingsRepo(t *testing.T) (SettingsRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewSettingsRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestGetSetting(t *testing.T) {
	query := regexp.QuoteMeta("SELECT value FROM settings WHERE key = ?")

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(query).WithArgs(models.SettingsKeyToken).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("sealed"))
		mock.ExpectCommit()

		value, err := repo.GetSetting(testContext(), models.SettingsKeyToken)

		require.NoError(t, err)
		assert.Equal(t, "sealed", value)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: not found", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"value"}))
		mock.ExpectRollback()

		_, err := repo.GetSetting(testContext(), models.SettingsKeyToken)

		require.ErrorIs(t, err, ErrSettingNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query fails", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(query).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		_, err := repo.GetSetting(testContext(), models.SettingsKeyToken)

		require.ErrorIs(t, err, ErrScanningRow)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetSetting(t *testing.T) {
	t.Run("success: upsert", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")+".*"+regexp.QuoteMeta("ON CONFLICT (key) DO UPDATE SET value = excluded.value")).
			WithArgs(models.SettingsKeyTokenSalt, "salt").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SetSetting(testContext(), models.SettingsKeyTokenSalt, "salt"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: exec fails", func(t *testing.T) {
		repo, mock := newTestSettingsRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err := repo.SetSetting(testContext(), "k", "v")

		require.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteSetting(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM settings WHERE key = ?")).
		WithArgs(models.SettingsKeyToken).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteSetting(testContext(), models.SettingsKeyToken))
	require.NoError(t, mock.ExpectationsWereMet())
}
