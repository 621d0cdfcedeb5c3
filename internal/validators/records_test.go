// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPayee() models.Payee {
	return models.Payee{ID: "9b4c1e2a-0000-4000-8000-000000000001", Name: "Grocery"}
}

func validTransaction() models.Transaction {
	return models.Transaction{
		ID:      "t-1",
		Date:    "2024-05-01",
		Amount:  -12340,
		Cleared: models.ClearedStatusCleared,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	p := validPayee()
	tr := validTransaction()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "unsupported type", obj: "a string", wantErr: ErrUnsupportedType},
		{name: "payee value", obj: p},
		{name: "payee pointer", obj: &p},
		{name: "payees data value", obj: models.PayeesData{Payees: []models.Payee{p}, ServerKnowledge: 1}},
		{name: "payees data pointer", obj: &models.PayeesData{}},
		{name: "transaction value", obj: tr},
		{name: "transaction pointer", obj: &tr},
		{name: "transactions data value", obj: models.TransactionsData{Transactions: []models.Transaction{tr}}},
		{name: "transactions data pointer", obj: &models.TransactionsData{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Payee
// ---------------------------------------------------------------------------

func TestValidatePayee(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		p := validPayee()
		p.ID = ""
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyID)
	})

	t.Run("empty name", func(t *testing.T) {
		p := validPayee()
		p.Name = ""
		assert.ErrorIs(t, v.Validate(ctx, p), ErrEmptyName)
	})

	t.Run("deleted payee without name", func(t *testing.T) {
		p := validPayee()
		p.Name = ""
		p.Deleted = true
		assert.NoError(t, v.Validate(ctx, p))
	})

	t.Run("scoped to id only", func(t *testing.T) {
		p := validPayee()
		p.Name = ""
		assert.NoError(t, v.Validate(ctx, p, FieldID))
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, validPayee(), FieldDate), ErrUnknownField)
	})
}

func TestValidatePayeesData(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	t.Run("duplicate id", func(t *testing.T) {
		data := models.PayeesData{Payees: []models.Payee{validPayee(), validPayee()}}
		err := v.Validate(ctx, data)
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Contains(t, err.Error(), validPayee().ID)
	})

	t.Run("invalid record reports index", func(t *testing.T) {
		bad := validPayee()
		bad.ID = ""
		data := models.PayeesData{Payees: []models.Payee{validPayee(), bad}}
		err := v.Validate(ctx, data)
		require.ErrorIs(t, err, ErrEmptyID)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("negative knowledge", func(t *testing.T) {
		err := v.Validate(ctx, models.PayeesData{ServerKnowledge: -1})
		assert.ErrorIs(t, err, ErrNegativeKnowledge)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.PayeesData{ServerKnowledge: 5}))
	})
}

// ---------------------------------------------------------------------------
// Transaction
// ---------------------------------------------------------------------------

func TestValidateTransaction(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Transaction)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Transaction) {}},
		{name: "empty id", mutate: func(tr *models.Transaction) { tr.ID = "" }, wantErr: ErrEmptyID},
		{name: "bad date", mutate: func(tr *models.Transaction) { tr.Date = "01/05/2024" }, wantErr: ErrInvalidDate},
		{name: "impossible date", mutate: func(tr *models.Transaction) { tr.Date = "2024-02-30" }, wantErr: ErrInvalidDate},
		{name: "uncleared", mutate: func(tr *models.Transaction) { tr.Cleared = models.ClearedStatusUncleared }},
		{name: "reconciled", mutate: func(tr *models.Transaction) { tr.Cleared = models.ClearedStatusReconciled }},
		{name: "unknown cleared", mutate: func(tr *models.Transaction) { tr.Cleared = "pending" }, wantErr: ErrInvalidClearedStatus},
		{name: "scoped skips date", mutate: func(tr *models.Transaction) { tr.Date = "" }, fields: []string{FieldID, FieldCleared}},
		{name: "unknown field", mutate: func(*models.Transaction) {}, fields: []string{FieldName}, wantErr: ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTransaction()
			tt.mutate(&tr)

			err := v.Validate(ctx, tr, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTransactionsData(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	t.Run("duplicate id", func(t *testing.T) {
		data := models.TransactionsData{Transactions: []models.Transaction{validTransaction(), validTransaction()}}
		assert.ErrorIs(t, v.Validate(ctx, data), ErrDuplicateID)
	})

	t.Run("invalid record", func(t *testing.T) {
		bad := validTransaction()
		bad.Cleared = ""
		data := models.TransactionsData{Transactions: []models.Transaction{bad}}
		err := v.Validate(ctx, data)
		require.ErrorIs(t, err, ErrInvalidClearedStatus)
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("scoped to knowledge", func(t *testing.T) {
		bad := validTransaction()
		bad.ID = ""
		data := models.TransactionsData{Transactions: []models.Transaction{bad}, ServerKnowledge: 3}
		assert.NoError(t, v.Validate(ctx, data, FieldServerKnowledge))
	})
}
