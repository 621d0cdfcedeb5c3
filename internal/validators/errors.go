package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID              = errors.New("record id is required")
	ErrDuplicateID          = errors.New("duplicate record id")
	ErrEmptyName            = errors.New("payee name is required")
	ErrInvalidDate          = errors.New("invalid transaction date")
	ErrInvalidClearedStatus = errors.New("invalid cleared status")
	ErrNegativeKnowledge    = errors.New("server knowledge cannot be negative")
)
