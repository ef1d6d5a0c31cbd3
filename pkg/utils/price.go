package utils

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price at the serialization boundary. Whole-number
// amounts drop the fractional part (100, not 100.00); anything else keeps
// full precision.
func FormatPrice(d decimal.Decimal) json.Number {
	if d.IsInteger() {
		return json.Number(d.Truncate(0).String())
	}
	return json.Number(d.String())
}

// FormatNullPrice formats a nullable price; returns nil for NULL so the
// field serializes as JSON null.
func FormatNullPrice(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}
	n := FormatPrice(d.Decimal)
	return &n
}
