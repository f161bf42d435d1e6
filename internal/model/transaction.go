package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one posted double-entry transaction. Its splits must
// balance: the value legs sum to zero in the transaction currency.
type Transaction struct {
	GUID         string
	CurrencyGUID string
	Date         time.Time
	Description  string
	Splits       []Split
}

// Split is one leg of a transaction, tied to exactly one account.
// Value is denominated in the transaction currency, Quantity in the
// account's commodity; both are rationals to avoid float drift.
type Split struct {
	GUID            string
	TransactionGUID string
	AccountGUID     string
	ValueNum        int64
	ValueDenom      int64
	QuantityNum     int64
	QuantityDenom   int64
}

// Value returns the split's value leg as a decimal.
func (s Split) Value() decimal.Decimal {
	return ratio(s.ValueNum, s.ValueDenom)
}

// Quantity returns the split's quantity leg as a decimal.
func (s Split) Quantity() decimal.Decimal {
	return ratio(s.QuantityNum, s.QuantityDenom)
}

func ratio(num, denom int64) decimal.Decimal {
	if denom == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(denom))
}
