package types

import (
	"github.com/shopspring/decimal"
)

// Money is a CAD amount kept as an exact decimal; it renders with two places.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalJSON renders the amount as a fixed two-place string, e.g. "18.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// Display renders the amount with a currency sign for logs and receipts.
func (m Money) Display() string {
	return "$" + m.StringFixed(2)
}
