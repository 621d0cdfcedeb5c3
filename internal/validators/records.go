package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ynab-payee-manager/models"
)

// Field names accepted by [RecordValidator.Validate].
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldDate            = "date"
	FieldCleared         = "cleared"
	FieldRecords         = "records"
	FieldServerKnowledge = "server_knowledge"
)

const isoDate = "2006-01-02"

var allowedClearedStatuses = []string{
	models.ClearedStatusCleared,
	models.ClearedStatusUncleared,
	models.ClearedStatusReconciled,
}

// RecordValidator validates payees and transactions, single or as a whole
// API response, in value or pointer form.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Payee:
		return v.validatePayee(value, fields...)
	case *models.Payee:
		return v.validatePayee(*value, fields...)
	case models.PayeesData:
		return v.validatePayeesData(value, fields...)
	case *models.PayeesData:
		return v.validatePayeesData(*value, fields...)
	case models.Transaction:
		return v.validateTransaction(value, fields...)
	case *models.Transaction:
		return v.validateTransaction(*value, fields...)
	case models.TransactionsData:
		return v.validateTransactionsData(value, fields...)
	case *models.TransactionsData:
		return v.validateTransactionsData(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Deleted payees are only checked for an id.
func (v *RecordValidator) validatePayee(payee models.Payee, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if payee.ID == "" {
				return ErrEmptyID
			}
		case FieldName:
			if payee.Name == "" && !payee.Deleted {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePayeesData(data models.PayeesData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerKnowledge, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldServerKnowledge:
			if data.ServerKnowledge < 0 {
				return ErrNegativeKnowledge
			}
		case FieldRecords:
			seen := make(map[string]struct{}, len(data.Payees))
			for i, payee := range data.Payees {
				if err := v.validatePayee(payee); err != nil {
					return fmt.Errorf("payee at index %d: %w", i, err)
				}
				if _, dup := seen[payee.ID]; dup {
					return fmt.Errorf("payee %s: %w", payee.ID, ErrDuplicateID)
				}
				seen[payee.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTransaction(transaction models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDate, FieldCleared}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if transaction.ID == "" {
				return ErrEmptyID
			}
		case FieldDate:
			if _, err := time.Parse(isoDate, transaction.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldCleared:
			if !isAllowedClearedStatus(transaction.Cleared) {
				return ErrInvalidClearedStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTransactionsData(data models.TransactionsData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerKnowledge, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldServerKnowledge:
			if data.ServerKnowledge < 0 {
				return ErrNegativeKnowledge
			}
		case FieldRecords:
			seen := make(map[string]struct{}, len(data.Transactions))
			for i, transaction := range data.Transactions {
				if err := v.validateTransaction(transaction); err != nil {
					return fmt.Errorf("transaction at index %d: %w", i, err)
				}
				if _, dup := seen[transaction.ID]; dup {
					return fmt.Errorf("transaction %s: %w", transaction.ID, ErrDuplicateID)
				}
				seen[transaction.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAllowedClearedStatus(status string) bool {
	for _, allowed := range allowedClearedStatuses {
		if status == allowed {
			return true
		}
	}
	return false
}
