package models

import "github.com/shopspring/decimal"

// FormatMilliunits renders an API milliunit amount with two decimal places,
// e.g. -100000 -> "-100.00".
func FormatMilliunits(amount int64) string {
	return decimal.New(amount, -3).StringFixed(2)
}
